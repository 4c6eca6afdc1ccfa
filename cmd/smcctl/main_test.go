// cmd/smcctl/main_test.go
package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/tamzrod/smcctl/internal/config"

	"github.com/tamzrod/smcctl/internal/poller"
	"github.com/tamzrod/smcctl/internal/session"
	"github.com/tamzrod/smcctl/internal/smc"
	"github.com/tamzrod/smcctl/internal/status"
)

func TestParseDriveArgs(t *testing.T) {
	d, err := parseDriveArgs(nil)
	if err != nil || d != nil {
		t.Fatalf("no args: d=%v err=%v", d, err)
	}

	d, err = parseDriveArgs([]string{"100", "-50", "2000"})
	if err != nil {
		t.Fatalf("parse err=%v", err)
	}
	if d.Left != 100 || d.Right != -50 || d.Hold != 2000*time.Microsecond {
		t.Fatalf("unexpected triple: %+v", *d)
	}

	d, err = parseDriveArgs([]string{"0", "0", strconv.FormatInt(maxHoldUs, 10)})
	if err != nil || d.Hold <= 0 {
		t.Fatalf("longest hold: d=%v err=%v", d, err)
	}

	d, err = parseDriveArgs([]string{"0", "0", "0"})
	if err != nil || d != nil {
		t.Fatalf("all-zero triple should select query mode: d=%v err=%v", d, err)
	}

	for _, bad := range [][]string{{"1"}, {"1", "2"}, {"a", "1", "1"}, {"1", "1", "-5"}, {"1", "1", "9300000000000"}} {
		if _, err := parseDriveArgs(bad); err == nil {
			t.Fatalf("expected error for %v", bad)
		}
	}
}

func TestPrintPoll(t *testing.T) {
	res := poller.PollResult{
		Controllers: []status.Snapshot{
			{
				Present:        true,
				ErrorStatus:    smc.Reading{Value: 0x20, Valid: true},
				RequestedSpeed: smc.Reading{Value: 100, Valid: true},
				CurrentSpeed:   smc.Reading{Value: 90, Valid: true},
				BrakeAmount:    smc.Reading{Valid: true},
				BatteryVoltage: smc.Reading{Value: 12345, Valid: true},
				Temperature:    smc.Reading{Value: 253, Valid: true},
				UptimeMs:       125500,
				UptimeValid:    true,
			},
			{},
		},
	}

	var buf bytes.Buffer
	printPoll(&buf, res)
	out := buf.String()

	for _, want := range []string{
		"Speed dc0 100 dc1 -9999\n",
		"Speed actual dc0 90 dc1 -9999\n",
		"Error status dc0 0x0020 dc1 -9999\n",
		"  dc0 2:05 125500\n",
		"  dc1 0:00 0\n",
		"Voltage dc0 12.345000 dc1 -9.999000\n",
		"Temperature dc0 25.300000 dc1 -999.900000\n",
		"Health dc0 ok dc1 absent\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintDrive(t *testing.T) {
	var buf bytes.Buffer
	printDrive(&buf, session.DriveResult{
		SetSpeed: []error{nil, smc.ErrAbsent},
		Brake:    []error{nil, smc.ErrAbsent},
		Held:     2 * time.Millisecond,
	})

	out := buf.String()
	for _, want := range []string{
		"Set speed left 0\n",
		"Set speed right -9999\n",
		"Brake dc0 0\n",
		"Brake dc1 -9999\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"1", "2"}, &stdout, &stderr); code != exitUsage {
		t.Fatalf("exit code: got=%d want=%d", code, exitUsage)
	}
}

func TestRun_WatchWithDriveTriple(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-watch", "100", "-50", "2000"}, &stdout, &stderr); code != exitUsage {
		t.Fatalf("exit code: got=%d want=%d", code, exitUsage)
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing should be driven:\n%s", stdout.String())
	}
}

func TestRun_BadConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(p, []byte("devices: [a, b, c]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", p}, &stdout, &stderr); code != exitConfig {
		t.Fatalf("exit code: got=%d want=%d", code, exitConfig)
	}
}

func TestRun_QueryWithMissingDevices(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "c.yaml")
	body := "devices: [" + filepath.Join(dir, "ttyACM0") + "]\ndiscovery: {dir: " + dir + "}\n"
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", p}, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit code: got=%d want=%d stderr=%s", code, exitOK, stderr.String())
	}

	out := stdout.String()
	if !strings.Contains(out, "dc0 "+filepath.Join(dir, "ttyACM0")+" absent") {
		t.Fatalf("handle line missing:\n%s", out)
	}
	if !strings.Contains(out, "Exit safe start dc0 -9999") {
		t.Fatalf("safe start line missing:\n%s", out)
	}
}

func TestResultCode(t *testing.T) {
	if resultCode(nil) != 0 || resultCode(errors.New("x")) != smc.Sentinel {
		t.Fatalf("unexpected result codes")
	}
}

// ---- watch / mirror ----

// zeroPort answers every read with zero bytes and calls onWrite after each write.
type zeroPort struct {
	writes  int
	onWrite func(n int)
}

func (p *zeroPort) Write(b []byte) (int, error) {
	p.writes++
	if p.onWrite != nil {
		p.onWrite(p.writes)
	}
	return len(b), nil
}

func (p *zeroPort) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = 0
	}
	return len(b), nil
}

func (p *zeroPort) Close() error { return nil }

// closedEndpoint returns a loopback address nothing listens on.
func closedEndpoint(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}

func TestRunWatch_PrintsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// one safe start and eight reads make a cycle; cancel inside the second
	port := &zeroPort{onWrite: func(n int) {
		if n > 9 {
			cancel()
		}
	}}
	open := func(path string) (io.ReadWriteCloser, error) {
		if path == "/dev/a" {
			return port, nil
		}
		return nil, errors.New("no such device")
	}

	cfg := &config.Config{
		Devices: []string{"/dev/a", "/dev/missing"},
		Watch:   config.WatchConfig{IntervalMs: 1},
		Mirror:  &config.MirrorConfig{Endpoint: closedEndpoint(t), TimeoutMs: 200},
	}
	config.Normalize(cfg)

	sess := session.Open(cfg.Devices, open)
	defer sess.Close()

	var stdout bytes.Buffer
	done := make(chan struct{})
	go func() {
		runWatch(ctx, cfg, sess, &stdout)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("runWatch did not return after cancel")
	}

	out := stdout.String()
	for _, want := range []string{
		"Speed dc0 0 dc1 -9999\n",
		"Health dc0 ok dc1 absent\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if port.writes < 10 {
		t.Fatalf("expected a second poll cycle to start, got %d writes", port.writes)
	}
}

func TestBuildMirror_UnreachableFallsBack(t *testing.T) {
	cfg := &config.Config{
		Mirror: &config.MirrorConfig{Endpoint: closedEndpoint(t), TimeoutMs: 200},
	}

	w, closeWriter := buildMirror(cfg)
	if w != nil {
		t.Fatalf("expected no writer for an unreachable endpoint")
	}
	closeWriter()

	// a query still completes without a mirror
	mirrorOnce(cfg, poller.PollResult{Controllers: []status.Snapshot{{}}})
}

func TestBuildMirror_Disabled(t *testing.T) {
	w, closeWriter := buildMirror(&config.Config{})
	if w != nil {
		t.Fatalf("mirror should be off without a mirror section")
	}
	closeWriter()
}
