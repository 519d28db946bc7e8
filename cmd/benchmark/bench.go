// Command benchmark drives load against a running gateway with vegeta and
// prints a latency report. It expects the target server to already be up;
// point it at a deployment with stub provider keys to avoid real spend.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

func main() {
	target := flag.String("target", "http://localhost:8080", "Base URL of the gateway")
	apiKey := flag.String("key", "", "Bearer token for the gateway (empty when auth is disabled)")
	model := flag.String("model", "gemini-2.5-flash-lite", "Model id to request")
	mode := flag.String("mode", "text", "Generation mode (text or json)")
	rate := flag.Int("rate", 25, "Requests per second")
	duration := flag.Duration("duration", 15*time.Second, "Duration of the attack")
	flag.Parse()

	body := fmt.Sprintf(`{"model": %q, "mode": %q, "prompt": "Reply with a single short sentence."}`, *model, *mode)

	header := http.Header{
		"Content-Type": []string{"application/json"},
	}
	if *apiKey != "" {
		header.Set("Authorization", "Bearer "+*apiKey)
	}

	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: "POST",
		URL:    *target + "/v1/generate",
		Body:   []byte(body),
		Header: header,
	})

	fmt.Printf("Attacking %s: %d req/s for %s (model %s)\n", *target, *rate, *duration, *model)

	attacker := vegeta.NewAttacker(vegeta.KeepAlive(true))
	var metrics vegeta.Metrics

	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: *rate, Per: time.Second}, *duration, "generate") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("--------------------------------------------------")
	fmt.Println("99th percentile: ", metrics.Latencies.P99)
	fmt.Println("Mean:            ", metrics.Latencies.Mean)
	fmt.Println("Max:             ", metrics.Latencies.Max)
	fmt.Printf("Success:         %.2f%%\n", metrics.Success*100)
	fmt.Printf("Throughput:      %.2f req/s\n", metrics.Throughput)
	fmt.Println("--------------------------------------------------")

	if len(metrics.Errors) > 0 {
		fmt.Println("Errors:")
		seen := make(map[string]bool)
		for _, msg := range metrics.Errors {
			if !seen[msg] && len(seen) < 5 {
				fmt.Println(" ", msg)
				seen[msg] = true
			}
		}
	}
}
