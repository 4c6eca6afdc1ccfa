// cmd/smcctl/report.go
package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tamzrod/smcctl/internal/poller"
	"github.com/tamzrod/smcctl/internal/session"
	"github.com/tamzrod/smcctl/internal/smc"
	"github.com/tamzrod/smcctl/internal/status"
)

// Human-readable output. Failed reads print the legacy sentinel value.

func printDriveArgs(w io.Writer, d driveArgs) {
	fmt.Fprintf(w, "Left  %d\nRight %d\nSleep %d\n", d.Left, d.Right, d.Hold.Microseconds())
}

func printDevices(w io.Writer, nodes []string) {
	for _, n := range nodes {
		fmt.Fprintln(w, n)
	}
}

func printHandles(w io.Writer, s *session.Session) {
	for i, d := range s.Devices() {
		state := "open"
		if s.Controller(i) == nil {
			state = "absent"
		}
		fmt.Fprintf(w, "dc%d %s %s\n", i, d, state)
	}
}

func printQuery(w io.Writer, res session.QueryResult) {
	fmt.Fprintf(w, "Exit safe start%s\n", row(len(res.SafeStart), func(i int) string {
		return fmt.Sprint(resultCode(res.SafeStart[i]))
	}))
	printPoll(w, res.Poll)
}

func printPoll(w io.Writer, res poller.PollResult) {
	cs := res.Controllers
	n := len(cs)

	fmt.Fprintf(w, "Speed%s\n", row(n, func(i int) string { return fmt.Sprint(cs[i].RequestedSpeed.Raw()) }))
	fmt.Fprintf(w, "Speed actual%s\n", row(n, func(i int) string { return fmt.Sprint(cs[i].CurrentSpeed.Raw()) }))
	fmt.Fprintf(w, "Error status%s\n", row(n, func(i int) string { return hexReading(cs[i].ErrorStatus) }))

	fmt.Fprintln(w, "Uptime:")
	for i, c := range cs {
		m, s := smc.SplitUptime(c.UptimeMs)
		fmt.Fprintf(w, "  dc%d %d:%02d %d\n", i, m, s, c.UptimeMs)
	}

	fmt.Fprintf(w, "Voltage%s\n", row(n, func(i int) string {
		return fmt.Sprintf("%f", smc.VoltageVolts(cs[i].BatteryVoltage.Raw()))
	}))
	fmt.Fprintf(w, "Temperature%s\n", row(n, func(i int) string {
		return fmt.Sprintf("%f", smc.TemperatureCelsius(cs[i].Temperature.Raw()))
	}))
	fmt.Fprintf(w, "Health%s\n", row(n, func(i int) string { return healthName(cs[i].Health()) }))
}

func printDrive(w io.Writer, res session.DriveResult) {
	for i, e := range res.SafeStart {
		fmt.Fprintf(w, "Exit safe start dc%d %d\n", i, resultCode(e))
	}

	names := []string{"left", "right"}
	for i, e := range res.SetSpeed {
		name := fmt.Sprintf("dc%d", i)
		if i < len(names) {
			name = names[i]
		}
		fmt.Fprintf(w, "Set speed %s %d\n", name, resultCode(e))
	}

	fmt.Fprintf(w, "Held %s\n", res.Held.Round(time.Microsecond))

	for i, e := range res.Stop {
		fmt.Fprintf(w, "Stop dc%d %d\n", i, resultCode(e))
	}
	for i, e := range res.Brake {
		fmt.Fprintf(w, "Brake dc%d %d\n", i, resultCode(e))
	}
}

// row renders " dc0 <v0> dc1 <v1> ...".
func row(n int, val func(i int) string) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, " dc%d %s", i, val(i))
	}
	return b.String()
}

// resultCode maps a command outcome to the legacy 0 / sentinel code.
func resultCode(err error) int {
	if err != nil {
		return smc.Sentinel
	}
	return 0
}

func hexReading(r smc.Reading) string {
	if !r.Valid {
		return fmt.Sprint(smc.Sentinel)
	}
	return fmt.Sprintf("0x%04X", r.Value)
}

func healthName(h uint16) string {
	switch h {
	case status.HealthOK:
		return "ok"
	case status.HealthError:
		return "error"
	case status.HealthAbsent:
		return "absent"
	default:
		return "unknown"
	}
}
