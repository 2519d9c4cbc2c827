package test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github/chapool/tron-walletconnect/internal/tron"
)

const (
	PathBroadcastTransaction = "/wallet/broadcasttransaction"
	PathTriggerSmartContract = "/wallet/triggersmartcontract"
	PathGetNowBlock          = "/wallet/getnowblock"
)

type cannedReply struct {
	status int
	body   string
}

// TronNode is a fake TronGrid full node serving canned replies per path and
// recording every request body it receives.
type TronNode struct {
	*httptest.Server

	mu       sync.Mutex
	replies  map[string]cannedReply
	requests map[string][]json.RawMessage
}

// NewTronNode starts a fake node which is closed when the test ends.
// Paths without a canned reply answer 404.
func NewTronNode(t *testing.T) *TronNode {
	t.Helper()

	node := &TronNode{
		replies:  make(map[string]cannedReply),
		requests: make(map[string][]json.RawMessage),
	}
	node.Server = httptest.NewServer(http.HandlerFunc(node.serveHTTP))
	t.Cleanup(node.Close)

	return node
}

func (n *TronNode) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	n.mu.Lock()
	n.requests[r.URL.Path] = append(n.requests[r.URL.Path], json.RawMessage(body))
	reply, ok := n.replies[r.URL.Path]
	n.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.status)
	_, _ = io.WriteString(w, reply.body)
}

// Respond sets the reply for path.
func (n *TronNode) Respond(path string, status int, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.replies[path] = cannedReply{status: status, body: body}
}

// Requests returns the request bodies received on path, oldest first.
func (n *TronNode) Requests(path string) []json.RawMessage {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]json.RawMessage(nil), n.requests[path]...)
}

// Profiles points every supported network at this node.
func (n *TronNode) Profiles() map[tron.Network]tron.Profile {
	profiles := make(map[tron.Network]tron.Profile, len(tron.SupportedNetworks))
	for _, network := range tron.SupportedNetworks {
		profiles[network] = tron.Profile{Network: network, FullNodeURL: n.URL}
	}
	return profiles
}
