// Command shadow_compare replays catalog and inquiry requests against the Go
// service and the legacy Express server and reports response differences.
// Generated identifiers and timestamps are ignored when comparing bodies.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
)

type target struct {
	Name     string          `json:"name"`
	Method   string          `json:"method"`
	Path     string          `json:"path"`
	Body     json.RawMessage `json:"body,omitempty"`
	Critical bool            `json:"critical"`
}

type targetFile struct {
	Targets []target `json:"targets"`
}

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	BodyDiff       string
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

// volatileKeys differ between two servers by construction.
var volatileKeys = map[string]struct{}{
	"id":           {},
	"universityId": {},
	"createdAt":    {},
}

func defaultTargets() []target {
	inquiry := json.RawMessage(`{"name":"Shadow Compare","email":"shadow@example.com","phone":"0000000000","country":"India","programInterest":"MBBS","educationLevel":"Bachelor's","message":"parity check"}`)
	badEmail := json.RawMessage(`{"name":"Shadow Compare","email":"nope","phone":"0000000000","country":"India","programInterest":"MBBS","educationLevel":"Bachelor's"}`)
	return []target{
		{Name: "universities", Method: http.MethodGet, Path: "/api/universities", Critical: true},
		{Name: "programs", Method: http.MethodGet, Path: "/api/programs", Critical: true},
		{Name: "testimonials", Method: http.MethodGet, Path: "/api/testimonials", Critical: true},
		{Name: "unknown university", Method: http.MethodGet, Path: "/api/universities/00000000-0000-0000-0000-000000000000", Critical: true},
		{Name: "unknown program", Method: http.MethodGet, Path: "/api/programs/00000000-0000-0000-0000-000000000000", Critical: true},
		{Name: "submit inquiry", Method: http.MethodPost, Path: "/api/inquiries", Body: inquiry, Critical: true},
		{Name: "reject inquiry", Method: http.MethodPost, Path: "/api/inquiries", Body: badEmail},
	}
}

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:5000", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:3000", "Legacy API base URL")
	flag.StringVar(&targetsPath, "targets", "", "Optional JSON targets file; built-in targets are used when empty")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets := defaultTargets()
	if targetsPath != "" {
		loaded, err := loadTargets(targetsPath)
		if err != nil {
			log.Fatalf("failed to load targets: %v", err)
		}
		targets = loaded
	}

	client := &http.Client{Timeout: timeout}
	var (
		comparisons  []comparison
		breaking     int
		optionalDiff int
	)

	for _, t := range targets {
		comp := compareTarget(client, goBase, legacyBase, t)
		diff := comp.Error != nil || !comp.StatusMatch || !comp.BodyMatch
		switch {
		case diff && t.Critical:
			breaking++
		case diff:
			optionalDiff++
		}
		comparisons = append(comparisons, comp)
	}

	printReport(os.Stdout, comparisons)

	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optionalDiff)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file targetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return file.Targets, nil
}

func compareTarget(client *http.Client, goBase, legacyBase string, tgt target) comparison {
	comp := comparison{Target: tgt}

	goStatus, goBody, goDur, err := performRequest(client, goBase, tgt)
	if err != nil {
		comp.Error = fmt.Errorf("go request failed: %w", err)
		return comp
	}
	legacyStatus, legacyBody, legacyDur, err := performRequest(client, legacyBase, tgt)
	if err != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", err)
		return comp
	}

	comp.GoStatus, comp.LegacyStatus = goStatus, legacyStatus
	comp.DurationGo, comp.DurationLegacy = goDur, legacyDur
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyDiff = bodyDiff(legacyBody, goBody)
	comp.BodyMatch = comp.BodyDiff == ""
	return comp
}

func performRequest(client *http.Client, base string, tgt target) (int, []byte, time.Duration, error) {
	if client == nil {
		return 0, nil, 0, errors.New("nil client")
	}
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var body io.Reader
	if len(tgt.Body) > 0 {
		body = bytes.NewReader(tgt.Body)
	}
	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, body)
	if err != nil {
		return 0, nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, payload, time.Since(start), nil
}

func bodiesEqual(a, b []byte) bool {
	return bodyDiff(a, b) == ""
}

// bodyDiff reports the normalized difference between two payloads, or an
// empty string when they match. Non-JSON payloads are diffed as text.
func bodyDiff(a, b []byte) string {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return ""
	}

	var aj, bj interface{}
	if json.Unmarshal(a, &aj) != nil || json.Unmarshal(b, &bj) != nil {
		return cmp.Diff(string(bytes.TrimSpace(a)), string(bytes.TrimSpace(b)))
	}
	return cmp.Diff(normalize(aj), normalize(bj))
}

// normalize drops volatile keys and null members so an omitted optional
// field and an explicit null compare equal.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			if _, skip := volatileKeys[k]; skip || child == nil {
				continue
			}
			out[k] = normalize(child)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = normalize(child)
		}
		return out
	default:
		return val
	}
}

func printReport(w io.Writer, results []comparison) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Target.Critical && !results[j].Target.Critical
	})
	fmt.Fprintln(w, "Shadow Compare Report")
	fmt.Fprintln(w, "======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		label := res.Target.Name
		if label == "" {
			label = res.Target.Path
		}
		fmt.Fprintf(w, "[%s] %s %s (%s)\n", status, res.Target.Method, res.Target.Path, label)
		fmt.Fprintf(w, "  Go Status: %d (%s)\n", res.GoStatus, res.DurationGo)
		fmt.Fprintf(w, "  Legacy Status: %d (%s)\n", res.LegacyStatus, res.DurationLegacy)
		if res.Error != nil {
			fmt.Fprintf(w, "  Error: %v\n", res.Error)
		} else {
			fmt.Fprintf(w, "  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
			if res.BodyDiff != "" {
				fmt.Fprintf(w, "  Body diff (-legacy +go):\n%s", res.BodyDiff)
			}
		}
	}
}
