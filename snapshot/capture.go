// Package snapshot captures full-page screenshots of generated pages with
// headless Chrome. The pages reveal their post fragments on scroll, so the
// capturer scrolls through the document in increments before forcing any
// still-hidden reveal elements visible and taking the image.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Sentinel errors for browser operations.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrCapture        = errors.New("failed to capture screenshot")
)

const (
	// settleDelay is the fixed pause after the network goes idle.
	settleDelay = 500 * time.Millisecond
	// scrollStep and scrollPause drive the incremental scroll that
	// triggers the lazy reveal animations.
	scrollStep  = 600
	scrollPause = 150 * time.Millisecond
	// idleWindow is how long the network must stay quiet.
	idleWindow = 300 * time.Millisecond
)

// Capturer takes numbered full-page screenshots into an output directory.
type Capturer struct {
	browser *rod.Browser
	timeout time.Duration
	outDir  string
	seq     int
}

// New creates a Capturer writing into outDir. The browser launches lazily
// on the first capture.
func New(outDir string, timeout time.Duration) *Capturer {
	return &Capturer{timeout: timeout, outDir: outDir}
}

// ensureBrowser lazily connects to the browser.
func (c *Capturer) ensureBrowser() error {
	if c.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use a pre-installed browser if specified (containerized environments).
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	// NoSandbox required for CI and containerized environments.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	c.browser = rod.New().ControlURL(u)
	if err := c.browser.Connect(); err != nil {
		c.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (c *Capturer) Close() error {
	if c.browser != nil {
		err := c.browser.Close()
		c.browser = nil
		return err
	}
	return nil
}

// Capture loads pageURL, waits for the network to settle plus a fixed
// delay, scrolls through the page to trigger the reveal animations, forces
// any still-hidden reveal elements visible, and writes a full-page PNG to
// the next numbered output file. It returns the written path.
func (c *Capturer) Capture(ctx context.Context, pageURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.ensureBrowser(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(c.outDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	page, err := c.browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return "", context.DeadlineExceeded
		}
	}
	page = page.Timeout(timeout)

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	wait := page.WaitRequestIdle(idleWindow, nil, nil, nil)
	wait()
	time.Sleep(settleDelay)

	if err := c.scrollThrough(page); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	c.seq++
	path := filepath.Join(c.outDir, fmt.Sprintf("shot_%03d.png", c.seq))

	data, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCapture, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing screenshot %s: %w", path, err)
	}
	return path, nil
}

// scrollThrough walks the document in fixed increments so every
// scroll-triggered reveal fires, then forces any element the observer
// missed and returns to the top.
func (c *Capturer) scrollThrough(page *rod.Page) error {
	height, err := page.Eval(`() => document.body.scrollHeight`)
	if err != nil {
		return err
	}

	for y := 0; y < height.Value.Int(); y += scrollStep {
		if _, err := page.Eval(`(y) => window.scrollTo(0, y)`, y); err != nil {
			return err
		}
		time.Sleep(scrollPause)
	}

	// Force any reveal the scroll pass never fired, then return to the top.
	_, err = page.Eval(`() => {
		document.querySelectorAll('.reveal').forEach((el) => {
			el.classList.add('visible');
			el.style.opacity = '1';
			el.style.transform = 'none';
		});
		window.scrollTo(0, 0);
	}`)
	return err
}
