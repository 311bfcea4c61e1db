package statsd

import (
	"net"
	"strings"
	"testing"
)

func TestNormalizeMetricName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		" sync/cycle ":  "sync_cycle",
		"foo..bar":      "foo.bar",
		".trimmed.":     "trimmed",
		"spaced  name":  "spaced__name",
		"slash/name/id": "slash_name_id",
		"":              "",
	}

	for input, want := range tests {
		if got := normalizeMetricName(input); got != want {
			t.Fatalf("normalizeMetricName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatTags(t *testing.T) {
	t.Parallel()

	got := formatTags(map[string]string{
		"result": " success ",
		"":       "ignored",
		"cycle":  "7",
	})
	want := "|#cycle:7,result:success"

	if got != want {
		t.Fatalf("formatTags mismatch\n got: %q\nwant: %q", got, want)
	}

	if got := formatTags(nil); got != "" {
		t.Fatalf("formatTags(nil) = %q, want empty string", got)
	}
}

func TestClientWritesLineProtocol(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen udp: %v", err)
	}
	defer pc.Close()

	client, err := NewClient(Config{
		Enabled: true,
		Address: pc.LocalAddr().String(),
		Prefix:  "taskmill",
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer client.Close()

	client.Count("sync.cycle", 1, map[string]string{"result": "success"})

	buf := make([]byte, 512)
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("read udp: %v", err)
	}

	line := string(buf[:n])
	want := "taskmill.sync.cycle:1|c|#result:success"
	if line != want {
		t.Fatalf("line = %q, want %q", line, want)
	}
}

func TestDisabledClientIsSilent(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{Enabled: false, Address: "127.0.0.1:8125"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.Enabled() {
		t.Fatal("disabled client reports enabled")
	}

	// Must not panic with no connection.
	client.Count("sync.cycle", 1, nil)
	client.Gauge("sync.last_success_epoch", 1.5, nil)
	client.Timing("sync.cycle_duration", 0, nil)

	var nilClient *Client
	nilClient.Count("sync.cycle", 1, nil)
	if nilClient.Enabled() {
		t.Fatal("nil client reports enabled")
	}
}

func TestMetricNamePrefixing(t *testing.T) {
	t.Parallel()

	c := &Client{prefix: "taskmill"}
	if got := c.metricName("sync.cycle"); got != "taskmill.sync.cycle" {
		t.Fatalf("metricName = %q", got)
	}

	bare := &Client{}
	if got := bare.metricName("sync.cycle"); got != "sync.cycle" {
		t.Fatalf("metricName without prefix = %q", got)
	}

	if got := c.metricName("   "); !strings.HasPrefix(got, "taskmill") {
		t.Fatalf("blank name should fall back to prefix, got %q", got)
	}
}
