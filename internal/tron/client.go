package tron

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	pathBroadcastTransaction = "/wallet/broadcasttransaction"
	pathTriggerSmartContract = "/wallet/triggersmartcontract"
	pathGetNowBlock          = "/wallet/getnowblock"

	apiKeyHeader = "TRON-PRO-API-KEY"
	// 节点响应体上限，防止异常节点返回超大响应
	maxResponseSize = 4 << 20
)

// Client 封装单个网络的 TronGrid HTTP 客户端
// 每次调用方创建、使用、丢弃，不做连接池或全局复用
type Client struct {
	profile    Profile
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient 根据网络配置创建客户端
func NewClient(profile Profile) (*Client, error) {
	if profile.FullNodeURL == "" {
		return nil, errors.Errorf("no full node URL configured for network %s", profile.Network)
	}

	baseURL, err := url.Parse(strings.TrimRight(profile.FullNodeURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid full node URL")
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, errors.Errorf("unsupported full node URL scheme %q", baseURL.Scheme)
	}

	return &Client{
		profile:    profile,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}, nil
}

// Network 返回客户端所属网络
func (c *Client) Network() Network {
	return c.profile.Network
}

// BroadcastTransaction 原样广播已签名交易 JSON，返回节点原始响应
// 签名覆盖 raw_data，因此请求体不做任何重新编码
func (c *Client) BroadcastTransaction(ctx context.Context, tx json.RawMessage) (json.RawMessage, error) {
	if len(bytes.TrimSpace(tx)) == 0 || !json.Valid(tx) {
		return nil, errors.New("transaction is not valid JSON")
	}

	raw, err := c.post(ctx, pathBroadcastTransaction, tx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to broadcast transaction")
	}

	return raw, nil
}

// TriggerSmartContract 构建未签名的合约调用交易
func (c *Client) TriggerSmartContract(ctx context.Context, req *TriggerSmartContractRequest) (*Transaction, error) {
	raw, err := c.post(ctx, pathTriggerSmartContract, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to trigger smart contract")
	}

	var resp TriggerSmartContractResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode trigger smart contract response")
	}

	if resp.Result != nil && !resp.Result.Result {
		return nil, errors.Errorf("trigger smart contract rejected: %s - %s", resp.Result.Code, DecodeMessage(resp.Result.Message))
	}

	if resp.Transaction != nil {
		return resp.Transaction, nil
	}

	// 部分节点直接返回交易本身，不带 transaction 包装
	var tx Transaction
	if err := json.Unmarshal(raw, &tx); err != nil || tx.RawData == nil {
		return nil, errors.New("trigger smart contract response carries no transaction")
	}

	return &tx, nil
}

// GetNowBlock 获取最新区块
func (c *Client) GetNowBlock(ctx context.Context) (*Block, error) {
	raw, err := c.post(ctx, pathGetNowBlock, struct{}{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get now block")
	}

	var block Block
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, errors.Wrap(err, "failed to decode block")
	}

	return &block, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request body")
	}

	endpoint := c.baseURL.JoinPath(path).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.profile.APIKey != "" {
		req.Header.Set(apiKeyHeader, c.profile.APIKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	log.Debug().
		Str("network", c.profile.Network.String()).
		Str("path", path).
		Int("status", res.StatusCode).
		Int("bytes", len(raw)).
		Msg("Full node replied")

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("unexpected status %d: %s", res.StatusCode, strings.TrimSpace(string(raw)))
	}

	if !json.Valid(raw) {
		return nil, errors.New("response is not valid JSON")
	}

	return raw, nil
}

// DecodeMessage TronGrid 的错误信息通常为 hex 编码，能解码为可读文本时返回解码结果
func DecodeMessage(msg string) string {
	if msg == "" || len(msg)%2 != 0 {
		return msg
	}

	decoded, err := hex.DecodeString(msg)
	if err != nil || !utf8.Valid(decoded) {
		return msg
	}

	for _, r := range string(decoded) {
		if r < 0x20 && r != '\n' && r != '\t' {
			return msg
		}
	}

	return string(decoded)
}
