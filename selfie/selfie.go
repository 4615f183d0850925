// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selfie connects to a selfie-to-avatar pipeline over a
// WebSocket and surfaces exported avatar URLs, which the viewer then
// loads as the body through the normal asset path.
package selfie

import (
	"encoding/json"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"github.com/gorilla/websocket"
)

// Event is one JSON message on the pipeline socket.
type Event struct {

	// Event is the event name: "frame.ready", "selfie.captured",
	// "avatar.exported".
	Event string `json:"event"`

	// URL carries the asset URL for events that produce one.
	URL string `json:"url,omitempty"`
}

// Client represents a connection to the selfie pipeline.
// Use [Connect] to create one.
type Client struct {

	// OnExported is called (from the read goroutine) with the URL of
	// each exported avatar. Set before calling [Client.Listen].
	OnExported func(url string)

	// OnCaptured is called with the URL of each captured selfie image,
	// if the pipeline publishes them. Optional.
	OnCaptured func(url string)

	// conn is the underlying WebSocket connection.
	conn *websocket.Conn

	// done is a channel that is closed when the connection is closed.
	done chan struct{}
}

// Connect connects to the selfie pipeline at the given ws:// or wss://
// URL and returns a [Client].
func Connect(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, done: make(chan struct{})}, nil
}

// Listen starts the read loop on its own goroutine. It subscribes to
// avatar exports when the pipeline signals readiness and dispatches
// events to the client callbacks. This function can only be called once.
func (c *Client) Listen() {
	go func() {
		for {
			_, msg, err := c.conn.ReadMessage()
			if err != nil {
				errors.Log(err)
				close(c.done)
				return
			}
			c.handle(msg)
		}
	}()
}

func (c *Client) handle(msg []byte) {
	var ev Event
	if err := json.Unmarshal(msg, &ev); err != nil {
		logx.PrintlnWarn("selfie: bad event: ", err)
		return
	}
	switch ev.Event {
	case "frame.ready":
		errors.Log(c.send(Event{Event: "subscribe"}))
	case "selfie.captured":
		if c.OnCaptured != nil {
			c.OnCaptured(ev.URL)
		}
	case "avatar.exported":
		if c.OnExported != nil {
			c.OnExported(ev.URL)
		}
	}
}

func (c *Client) send(ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Close cleanly closes the connection. It does not directly trigger
// [Client.OnClose]; the read loop does once the close completes.
func (c *Client) Close() error {
	return c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// OnClose sets a callback function to be called when the connection is
// closed. This function can only be called once.
func (c *Client) OnClose(f func()) {
	go func() {
		<-c.done
		f()
	}()
}
