// Package api 封裝對三個後端服務的 HTTP 呼叫，
// 並把 JSON 與純文字兩種錯誤回報格式正規化成單一的失敗路徑。
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultUserAgent = "storefront-console"

// snippetLimit 是純文字錯誤內文折疊後保留的最大字元數
const snippetLimit = 120

// Config 描述一個後端的連線設定
type Config struct {
	// BaseURL 是後端服務的根位址，例如 http://localhost:8000
	BaseURL string

	// UserAgent 預設為 storefront-console
	UserAgent string

	Logger *zap.Logger
}

// Client 對單一後端發出請求。每次呼叫只嘗試一次，
// 不重試、不設逾時，失敗立即回報給呼叫端。
type Client struct {
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", cfg.BaseURL, err)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	// cookie jar 對應瀏覽器的 credentials 模式
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &Client{
		baseURL:   base,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Jar: jar,
		},
		logger: cfg.Logger,
	}, nil
}

type requestOptions struct {
	body        io.Reader
	contentType string
	buildErr    error
}

type RequestOption func(*requestOptions)

// WithJSONBody 把 v 序列化成 JSON 請求內文
func WithJSONBody(v any) RequestOption {
	return func(o *requestOptions) {
		data, err := json.Marshal(v)
		if err != nil {
			o.buildErr = fmt.Errorf("encode request body: %w", err)
			return
		}
		o.body = bytes.NewReader(data)
		o.contentType = "application/json"
	}
}

// WithMultipartFile 把 r 包成 multipart/form-data 請求內文，
// 用於商品圖片上傳。
func WithMultipartFile(field, filename string, r io.Reader) RequestOption {
	return func(o *requestOptions) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile(field, filename)
		if err != nil {
			o.buildErr = fmt.Errorf("create multipart field %q: %w", field, err)
			return
		}
		if _, err = io.Copy(part, r); err != nil {
			o.buildErr = fmt.Errorf("copy multipart content: %w", err)
			return
		}
		if err = w.Close(); err != nil {
			o.buildErr = fmt.Errorf("finalize multipart body: %w", err)
			return
		}
		o.body = &buf
		o.contentType = w.FormDataContentType()
	}
}

// Do 發出請求並回傳正規化後的結果。成功時回傳回應內文的原始位元組
// （JSON 回應保證可解析，非 JSON 回應為原始文字，涵蓋 204 空回應）；
// 失敗時回傳 *Error。
func (c *Client) Do(ctx context.Context, method, path string, opts ...RequestOption) ([]byte, error) {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.buildErr != nil {
		return nil, o.buildErr
	}

	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse request path %q: %w", path, err)
	}
	target := c.baseURL.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, method, target.String(), o.body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if o.contentType != "" {
		req.Header.Set("Content-Type", o.contentType)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		// 傳輸層失敗（連線被拒、DNS 失敗等）直接以底層錯誤訊息回報
		c.logger.Debug("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, &Error{Message: err.Error()}
	}
	defer res.Body.Close()

	c.logger.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	// 1. 檢查回應宣告的內容類型（大小寫不敏感）
	contentType := strings.ToLower(res.Header.Get("Content-Type"))
	ok := res.StatusCode >= 200 && res.StatusCode < 300

	// 2. JSON 回應：失敗時從 detail/message 欄位取出訊息
	if strings.Contains(contentType, "application/json") {
		if !ok {
			return nil, &Error{Status: res.StatusCode, Message: jsonErrorMessage(res.StatusCode, body)}
		}
		if len(body) > 0 && !json.Valid(body) {
			return nil, fmt.Errorf("decode %s %s response: invalid JSON", method, path)
		}
		return body, nil
	}

	// 3. 非 JSON 回應：失敗時以狀態碼加上折疊後的內文片段回報
	if !ok {
		msg := fmt.Sprintf("HTTP %d %s - %s",
			res.StatusCode, http.StatusText(res.StatusCode), snippet(string(body)))
		return nil, &Error{Status: res.StatusCode, Message: msg}
	}
	return body, nil
}

// DoJSON 在 Do 之上把成功的回應解碼到 out；out 為 nil 或
// 回應為空時不解碼。
func (c *Client) DoJSON(ctx context.Context, method, path string, out any, opts ...RequestOption) error {
	data, err := c.Do(ctx, method, path, opts...)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// jsonErrorMessage 依序嘗試 detail、message 欄位，最後退回一般化的
// HTTP 狀態字串。欄位本身如果是結構化的值，序列化後原樣顯示。
func jsonErrorMessage(status int, body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"detail", "message"} {
			raw, found := payload[key]
			if !found || string(raw) == "null" {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				return s
			}
			return string(raw)
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}

// snippet 把空白序列折疊成單一空格並截斷到 120 字元
func snippet(s string) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	runes := []rune(collapsed)
	if len(runes) > snippetLimit {
		return string(runes[:snippetLimit])
	}
	return collapsed
}
