package proxy

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"room-planner/internal/common/middleware"
)

// ============================================================
// Proxy Handler
// ============================================================

// hopHeaders are not copied from upstream responses; fiber sets them itself.
var hopHeaders = map[string]bool{
	"Connection":        true,
	"Content-Length":    true,
	"Keep-Alive":        true,
	"Transfer-Encoding": true,
}

type Proxy struct {
	client *http.Client
	log    *zap.Logger
}

// New returns a proxy using client, or a client with a 30s timeout when nil.
func New(client *http.Client, log *zap.Logger) *Proxy {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Proxy{client: client, log: log.Named("proxy")}
}

// Mount forwards requests under prefix to baseURL, keeping the remainder of
// the path and the query string: /api/v1/catalog/sofa-1?x=1 with prefix
// /api/v1 becomes baseURL/catalog/sofa-1?x=1.
func (p *Proxy) Mount(prefix, baseURL string) fiber.Handler {
	baseURL = strings.TrimRight(baseURL, "/")
	return func(c fiber.Ctx) error {
		return p.Forward(c, TargetURL(baseURL, strings.TrimPrefix(c.Path(), prefix), string(c.Request().URI().QueryString())))
	}
}

// TargetURL joins an upstream base, a path and a raw query string.
func TargetURL(baseURL, path, rawQuery string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if rawQuery == "" {
		return baseURL + path
	}
	return baseURL + path + "?" + rawQuery
}

// Forward sends the request to targetURL, re-encoding multipart bodies.
func (p *Proxy) Forward(c fiber.Ctx, targetURL string) error {
	contentType := c.Get("Content-Type")
	p.log.Debug("forwarding",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("target", targetURL),
		zap.String("content_type", contentType),
		zap.Int("content_length", len(c.Body())))

	if !strings.HasPrefix(contentType, "multipart/form-data") {
		return p.send(c, targetURL, contentType, bytes.NewReader(c.Body()))
	}

	body, formType, err := rebuildMultipart(c)
	if err != nil {
		p.log.Info("invalid multipart body", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid multipart data"})
	}
	return p.send(c, targetURL, formType, body)
}

func (p *Proxy) send(c fiber.Ctx, targetURL, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(c.Context(), c.Method(), targetURL, body)
	if err != nil {
		p.log.Error("build request", zap.String("target", targetURL), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "proxy failed"})
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth := c.Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if id := middleware.GetRequestID(c); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Warn("upstream unreachable", zap.String("target", targetURL), zap.Error(err))
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "failed to reach upstream service"})
	}
	defer resp.Body.Close()

	return p.copyResponse(c, resp)
}

func rebuildMultipart(c fiber.Ctx) (*bytes.Buffer, string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, "", err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, files := range form.File {
		for _, fileHeader := range files {
			h := make(textproto.MIMEHeader)
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, key, fileHeader.Filename))
			h.Set("Content-Type", fileHeader.Header.Get("Content-Type"))

			part, err := writer.CreatePart(h)
			if err != nil {
				return nil, "", fmt.Errorf("create part %q: %w", key, err)
			}
			if err := copyFile(part, fileHeader); err != nil {
				return nil, "", err
			}
		}
	}

	for key, values := range form.Value {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				return nil, "", fmt.Errorf("write field %q: %w", key, err)
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

func copyFile(dst io.Writer, fh *multipart.FileHeader) error {
	file, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open %q: %w", fh.Filename, err)
	}
	defer file.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return fmt.Errorf("copy %q: %w", fh.Filename, err)
	}
	return nil
}

func (p *Proxy) copyResponse(c fiber.Ctx, resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		p.log.Warn("read upstream response", zap.Error(err))
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "invalid upstream response"})
	}

	for key, values := range resp.Header {
		if hopHeaders[key] {
			continue
		}
		for _, v := range values {
			c.Response().Header.Add(key, v)
		}
	}

	c.Status(resp.StatusCode)
	return c.Send(data)
}
