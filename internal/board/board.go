// Package board habla con la placa de sensores del consultorio por HTTP:
// un GET por operación, sin reintentos.
package board

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vet-care-assistant/internal/platform/httpclient"
)

var ErrInvalidPin = errors.New("invalid pin")

// Reading es lo que devolvió la placa, tal cual.
type Reading struct {
	URL        string
	StatusCode int
	Body       string
}

type Client struct {
	http *httpclient.Client
}

func New(addr string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(addr, timeout)
	if err != nil {
		return nil, err
	}
	if hc.BaseURL == "" {
		return nil, errors.New("board: address required")
	}
	return &Client{http: hc}, nil
}

// SetDigital pone el pin en alto (on) o bajo: GET /digital/{pin}/{1|0}.
func (c *Client) SetDigital(ctx context.Context, pin int, on bool) (Reading, error) {
	if pin < 0 {
		return Reading{}, ErrInvalidPin
	}
	v := 0
	if on {
		v = 1
	}
	return c.get(ctx, fmt.Sprintf("/digital/%d/%d", pin, v))
}

// ReadAnalog lee un sensor: GET /analog/{pin}.
func (c *Client) ReadAnalog(ctx context.Context, pin int) (Reading, error) {
	if pin < 0 {
		return Reading{}, ErrInvalidPin
	}
	return c.get(ctx, fmt.Sprintf("/analog/%d", pin))
}

func (c *Client) get(ctx context.Context, path string) (Reading, error) {
	res, err := c.http.Get(ctx, path)
	if err != nil {
		return Reading{}, err
	}
	return Reading{
		URL:        c.http.BaseURL + path,
		StatusCode: res.StatusCode,
		Body:       res.Body,
	}, nil
}
