// Package screenshot writes page and element captures to disk.
package screenshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Capturer saves browser screenshots into one directory, one timestamped
// file per capture.
type Capturer struct {
	dir     string
	format  string
	quality int
}

// NewCapturer returns a Capturer writing into dir. Format is "png" or
// "jpeg"; quality applies to jpeg only.
func NewCapturer(dir, format string, quality int) *Capturer {
	if format == "" {
		format = "png"
	}
	return &Capturer{dir: dir, format: format, quality: quality}
}

// Dir returns the directory captures are written to.
func (c *Capturer) Dir() string {
	return c.dir
}

// FullPage captures the entire page, including content beyond the
// viewport, and returns the path written.
func (c *Capturer) FullPage(page *rod.Page, name string) (string, error) {
	data, err := page.Screenshot(true, c.request())
	if err != nil {
		return "", fmt.Errorf("full page screenshot: %w", err)
	}
	return c.save(data, name)
}

// Viewport captures only the visible part of the page.
func (c *Capturer) Viewport(page *rod.Page, name string) (string, error) {
	data, err := page.Screenshot(false, c.request())
	if err != nil {
		return "", fmt.Errorf("viewport screenshot: %w", err)
	}
	return c.save(data, name)
}

// Element captures a single element's bounding box.
func (c *Capturer) Element(el *rod.Element, name string) (string, error) {
	data, err := el.Screenshot(c.protoFormat(), c.quality)
	if err != nil {
		return "", fmt.Errorf("element screenshot: %w", err)
	}
	return c.save(data, name)
}

// save writes data under a timestamped filename and returns the path.
func (c *Capturer) save(data []byte, name string) (string, error) {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}
	path := filepath.Join(c.dir, Filename(name, c.format, time.Now()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("save screenshot: %w", err)
	}
	return path, nil
}

// request builds the CDP capture parameters for page screenshots.
func (c *Capturer) request() *proto.PageCaptureScreenshot {
	req := &proto.PageCaptureScreenshot{Format: c.protoFormat()}
	if req.Format == proto.PageCaptureScreenshotFormatJpeg {
		q := c.quality
		req.Quality = &q
	}
	return req
}

func (c *Capturer) protoFormat() proto.PageCaptureScreenshotFormat {
	if c.format == "jpeg" {
		return proto.PageCaptureScreenshotFormatJpeg
	}
	return proto.PageCaptureScreenshotFormatPng
}

// Filename derives the timestamped screenshot filename for a base name.
func Filename(name, format string, at time.Time) string {
	if format == "" {
		format = "png"
	}
	return fmt.Sprintf("%s_%s.%s", name, at.Format("20060102_150405"), format)
}
