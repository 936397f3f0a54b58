// Package main provides a CLI tool for validating salarycast server endpoints.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type endpoint struct {
	path        string
	method      string
	body        string
	contentType string
	contains    []string
}

var endpoints = []endpoint{
	// Reference documents
	{path: "/api/specialties", method: "GET", contentType: "application/json", contains: []string{"doctors_est"}},
	{path: "/api/jobs", method: "GET", contentType: "application/json", contains: []string{"salary_gross_min"}},
	{path: "/api/config", method: "GET", contentType: "application/json", contains: []string{"tax_brackets"}},

	// Projection
	{
		path:        "/api/projection",
		method:      "POST",
		body:        `{"base_gross": 48000, "years": 10}`,
		contentType: "application/json",
		contains:    []string{"scenario_id", "cumulative_net_worth"},
	},
	{path: "/api/report.pdf?base_gross=48000&years=5", method: "GET", contentType: "application/pdf"},

	// Market cap
	{path: "/api/marketcap", method: "GET", contentType: "application/json", contains: []string{"total_market_cap"}},

	// Service endpoints
	{path: "/api/health", method: "GET", contentType: "application/json", contains: []string{`"status":"ok"`}},
	{path: "/api/version", method: "GET", contentType: "application/json", contains: []string{"goVersion"}},
}

type result struct {
	endpoint endpoint
	status   int
	duration time.Duration
	err      error
	failures []string
}

func main() {
	url := flag.String("url", "http://localhost:8080", "Base URL of the server to validate")
	verbose := flag.Bool("v", false, "Verbose output")
	timeout := flag.Int("timeout", 10, "Request timeout in seconds")
	flag.Parse()

	client := &http.Client{Timeout: time.Duration(*timeout) * time.Second}

	var results []result
	failed := 0
	for _, ep := range endpoints {
		res := probe(client, *url, ep)
		if res.err != nil || len(res.failures) > 0 {
			failed++
		}
		results = append(results, res)
	}

	for _, res := range results {
		ok := res.err == nil && len(res.failures) == 0
		if ok && !*verbose {
			continue
		}
		marker := "PASS"
		if !ok {
			marker = "FAIL"
		}
		fmt.Printf("%s %-6s %s (%d, %v)\n", marker, res.endpoint.method, res.endpoint.path, res.status, res.duration.Round(time.Millisecond))
		if res.err != nil {
			fmt.Printf("     error: %v\n", res.err)
		}
		for _, f := range res.failures {
			fmt.Printf("     %s\n", f)
		}
	}

	fmt.Printf("\n%d/%d endpoints passed\n", len(endpoints)-failed, len(endpoints))
	if failed > 0 {
		os.Exit(1)
	}
}

func probe(client *http.Client, baseURL string, ep endpoint) result {
	res := result{endpoint: ep}
	start := time.Now()

	var resp *http.Response
	var err error
	switch ep.method {
	case "POST":
		resp, err = client.Post(baseURL+ep.path, "application/json", strings.NewReader(ep.body))
	default:
		resp, err = client.Get(baseURL + ep.path)
	}
	res.duration = time.Since(start)
	if err != nil {
		res.err = err
		return res
	}
	defer resp.Body.Close()

	res.status = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		res.failures = append(res.failures, fmt.Sprintf("expected status 200, got %d", resp.StatusCode))
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, ep.contentType) {
		res.failures = append(res.failures, fmt.Sprintf("expected content type %s, got %s", ep.contentType, ct))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.err = err
		return res
	}
	for _, want := range ep.contains {
		if !strings.Contains(string(body), want) {
			res.failures = append(res.failures, fmt.Sprintf("body missing %q", want))
		}
	}
	return res
}
