//go:build !js

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"github.com/gorilla/websocket"

	ansihtml "github.com/danielgatis/go-ansihtml"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for demo
	},
}

// runMessage asks the server to run a command line in a pseudo terminal.
type runMessage struct {
	Type        string `json:"type"`
	Command     string `json:"command"`
	Cols        int    `json:"cols"`
	LineNumbers bool   `json:"lineNumbers"`
}

// outputMessage carries the command output rendered as an HTML fragment.
type outputMessage struct {
	Type     string `json:"type"`
	HTML     string `json:"html,omitempty"`
	ExitCode int    `json:"exitCode"`
	Error    string `json:"error,omitempty"`
}

// maxCols bounds the terminal width a client may ask for.
const maxCols = 1000

// clampCols returns cols limited to 1..maxCols, defaulting to 80.
func clampCols(cols int) int {
	switch {
	case cols <= 0:
		return 80
	case cols > maxCols:
		return maxCols
	}
	return cols
}

// runInPTY runs line under the user's shell with a terminal attached, so
// programs keep their colors, and returns everything it printed.
func runInPTY(line string, cols int) ([]byte, int, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell, "-c", line)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: uint16(cols)})
	if err != nil {
		return nil, -1, err
	}
	defer ptmx.Close()

	var out bytes.Buffer
	// Reading the pty fails with EIO once the child exits.
	_, _ = io.Copy(&out, ptmx)

	exitCode := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return out.Bytes(), -1, err
		}
		exitCode = exitErr.ExitCode()
	}
	return out.Bytes(), exitCode, nil
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}

		var msg runMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "run" || msg.Command == "" {
			continue
		}
		msg.Cols = clampCols(msg.Cols)

		log.Printf("Running %q", msg.Command)
		if err := conn.WriteJSON(execute(msg)); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
}

// execute runs msg and renders its output.
func execute(msg runMessage) outputMessage {
	raw, exitCode, err := runInPTY(msg.Command, msg.Cols)
	if err != nil {
		return outputMessage{Type: "output", ExitCode: exitCode, Error: err.Error()}
	}

	opts := []ansihtml.Option{ansihtml.WithFragment(), ansihtml.WithWrap(msg.Cols)}
	if msg.LineNumbers {
		opts = append(opts, ansihtml.WithLineNumbers())
	}

	// The pty turns \n into \r\n; carriage returns produce no output.
	html, err := ansihtml.New(opts...).RenderString(string(raw))
	if err != nil {
		return outputMessage{Type: "output", ExitCode: exitCode, Error: err.Error()}
	}
	return outputMessage{Type: "output", HTML: html, ExitCode: exitCode}
}

func main() {
	// Static files
	fs := http.FileServer(http.Dir("."))
	http.Handle("/", fs)

	// WebSocket endpoint
	http.HandleFunc("/ws", handleWebSocket)

	// Handle graceful shutdown
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Println("Shutting down...")
		os.Exit(0)
	}()

	addr := ":8080"
	log.Printf("Server starting on http://localhost%s", addr)
	log.Printf("WebSocket endpoint: ws://localhost%s/ws", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
