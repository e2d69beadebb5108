package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// replay_probe fires each configured privileged action twice with the same
// X-Idempotency-Key against a staging console and checks that the second
// response acknowledges the replay instead of mutating again.

type target struct {
	Name     string          `json:"name"`
	Path     string          `json:"path"`
	Body     json.RawMessage `json:"body"`
	Critical bool            `json:"critical"`
}

type config struct {
	Targets []target `json:"targets"`
}

type ack struct {
	OK         bool   `json:"ok"`
	Idempotent bool   `json:"idempotent"`
	Error      string `json:"error"`
}

type probe struct {
	Target         target
	FirstStatus    int
	SecondStatus   int
	FirstAck       ack
	SecondAck      ack
	ReplayDetected bool
	Error          error
	DurationFirst  time.Duration
	DurationSecond time.Duration
}

func main() {
	var (
		base        string
		token       string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "Admin API base URL")
	flag.StringVar(&token, "token", "", "Bearer token for a staging admin account")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "replay_probe", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	if token == "" {
		log.Fatal("a -token for a staging admin account is required")
	}

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	var (
		probes   []probe
		breaking int
		softDiff int
	)

	for _, t := range targets {
		p := probeTarget(client, base, token, t)
		if p.Error != nil || !p.ReplayDetected {
			if t.Critical {
				breaking++
			} else {
				softDiff++
			}
		}
		probes = append(probes, p)
	}

	printReport(probes)

	fmt.Printf("Breaking replays: %d, Soft diffs: %d\n", breaking, softDiff)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func probeTarget(client *http.Client, base, token string, tgt target) probe {
	p := probe{Target: tgt}
	key := fmt.Sprintf("probe-%s-%d", tgt.Name, time.Now().UnixNano())

	firstStatus, firstAck, firstDur, err := performRequest(client, base, token, key, tgt)
	p.FirstStatus = firstStatus
	p.FirstAck = firstAck
	p.DurationFirst = firstDur
	if err != nil {
		p.Error = fmt.Errorf("first request failed: %w", err)
		return p
	}

	secondStatus, secondAck, secondDur, err := performRequest(client, base, token, key, tgt)
	p.SecondStatus = secondStatus
	p.SecondAck = secondAck
	p.DurationSecond = secondDur
	if err != nil {
		p.Error = fmt.Errorf("replay request failed: %w", err)
		return p
	}

	p.ReplayDetected = firstStatus == http.StatusOK &&
		secondStatus == http.StatusOK &&
		firstAck.OK && !firstAck.Idempotent &&
		secondAck.OK && secondAck.Idempotent
	return p
}

func performRequest(client *http.Client, base, token, key string, tgt target) (int, ack, time.Duration, error) {
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := strings.TrimRight(base, "/") + path

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(tgt.Body))
	if err != nil {
		return 0, ack{}, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Idempotency-Key", key)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, ack{}, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, ack{}, time.Since(start), fmt.Errorf("read body: %w", err)
	}

	var a ack
	if err := json.Unmarshal(body, &a); err != nil {
		return resp.StatusCode, ack{}, time.Since(start), fmt.Errorf("decode body: %w", err)
	}
	return resp.StatusCode, a, time.Since(start), nil
}

func printReport(results []probe) {
	fmt.Println("Replay Probe Report")
	fmt.Println("===================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.ReplayDetected {
			status = "DIFF"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Target.Name, res.Target.Path)
		fmt.Printf("  First: %d ok=%t idempotent=%t (%s)\n", res.FirstStatus, res.FirstAck.OK, res.FirstAck.Idempotent, res.DurationFirst)
		fmt.Printf("  Replay: %d ok=%t idempotent=%t (%s)\n", res.SecondStatus, res.SecondAck.OK, res.SecondAck.Idempotent, res.DurationSecond)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
		} else {
			fmt.Printf("  Replay detected: %t | Critical: %t\n", res.ReplayDetected, res.Target.Critical)
		}
	}
}
