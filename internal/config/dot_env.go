package config

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

// DotEnvTryLoad forcefully overrides ENV variables through **a maybe available** .env file.
//
// This function will always remain silent if a .env file does not exist!
// If we successfully apply an ENV file, we will log a warning.
// If there are any other errors, we will panic.
func DotEnvTryLoad(absolutePathToEnvFile string) {
	err := gotenv.OverLoad(absolutePathToEnvFile)

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}

		log.Panic().Err(err).Str("envFile", absolutePathToEnvFile).Msg(".env parse error!")
	}

	log.Warn().Str("envFile", absolutePathToEnvFile).Msg(".env overrides ENV variables!")
}
