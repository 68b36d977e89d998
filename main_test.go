// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"
)

// TestServeDrainsInFlightRequests verifies that serve only returns after a
// request that was running when the signal arrived has completed
func TestServeDrainsInFlightRequests(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}

	started := make(chan struct{})
	var finished atomic.Bool
	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			// Stands in for a slow PutAll
			time.Sleep(300 * time.Millisecond)
			finished.Store(true)
			w.WriteHeader(http.StatusCreated)
		}),
	}

	stop := make(chan os.Signal, 1)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- serve(server, ln, stop, 5*time.Second)
	}()

	status := make(chan int, 1)
	go func() {
		resp, err := http.Post("http://"+ln.Addr().String()+"/api/ratings", "application/json", nil)
		if err != nil {
			status <- 0
			return
		}
		resp.Body.Close()
		status <- resp.StatusCode
	}()

	<-started
	stop <- syscall.SIGTERM

	if err := <-serveErr; err != nil {
		t.Fatalf("serve returned error: %v", err)
	}
	if !finished.Load() {
		t.Error("serve returned before the in-flight request finished")
	}
	if code := <-status; code != http.StatusCreated {
		t.Errorf("Expected in-flight request to complete with 201, got %d", code)
	}
}

func TestServeReturnsListenerErrors(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	ln.Close()

	server := &http.Server{Handler: http.NotFoundHandler()}
	if err := serve(server, ln, make(chan os.Signal), time.Second); err == nil {
		t.Error("Expected an error serving on a closed listener")
	}
}
