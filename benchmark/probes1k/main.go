package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var maxProbes int = 1000
var httpHostPort string = "127.0.0.1:8080"
var grpcHostPort string = "127.0.0.1:10801"

const facilityID = "bench-facility"

var grpcClient healthpb.HealthClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func main() {
	probeIDs := make([]string, maxProbes)
	for i := range maxProbes {
		probeIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v probe IDs\n", maxProbes)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = healthpb.NewHealthClient(conn)

	if _, err := grpcClient.Check(context.Background(), &healthpb.HealthCheckRequest{}); err != nil {
		log.Fatal("gRPC health check failed:", err)
	}

	fmt.Printf("gRPC server verified and connected\n")

	postJSON("/facilities", map[string]string{"id": facilityID, "name": "Benchmark Kantine", "cookingMethodId": "CM1"})

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxProbes {
		wg.Add(1)
		go func() {
			insertRefrigerator(probeIDs[i])
			fmt.Printf("\rinserted refrigerator for probe %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted refrigerators for %v probes: used time=%v seconds, throughput=%v action/second\n",
		maxProbes, usedTime.Seconds(), float64(maxProbes)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxProbes {
		wg.Add(1)
		go func() {
			doAction(probeIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v probes: used time=%v seconds, throughput=%v action/second\n",
		maxProbes, usedTime.Seconds(), float64(maxProbes*3)/usedTime.Seconds(),
	)
}

func rndInt31n(n int32) int32 {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(n)
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func postJSON(path string, payload any) {
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusTooManyRequests {
		fmt.Printf("\nresponse status code for %s: %v\n", path, resp.StatusCode)
	}
}

func insertRefrigerator(probeID string) {
	postJSON("/refrigerators", map[string]string{
		"id":         probeID,
		"name":       "Kühlschrank " + probeID[:8],
		"facilityId": facilityID,
		"typeId":     "RT1",
	})
}

func doAction(probeID string) {
	actions := []func(){
		genPostReadingAction(probeID),
		genGetAlertsAction(),
		genHealthCheckAction(),
	}
	actionNames := []string{
		"PostReading",
		"GetAlerts",
		"HealthCheck",
	}
	rndMu.Lock()
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	rndMu.Unlock()
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for probe %v", actionNames[index], probeID)
		time.Sleep(time.Duration(100+rndInt31n(1000)) * time.Millisecond)
	}
}

// genPostReadingAction posts a fridge air temperature, a good share of them
// outside the 2-7 °C band.
func genPostReadingAction(probeID string) func() {
	return func() {
		postJSON("/readings", map[string]any{
			"targetId":       probeID,
			"targetType":     "refrigerator",
			"checkpointName": "Luft",
			"value":          rndFloat64(0.0, 8.5, 1),
			"timestamp":      time.Now().Format(time.RFC3339),
			"userId":         probeID,
			"facilityId":     facilityID,
		})
	}
}

func genGetAlertsAction() func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/alerts?unresolved=true&facility_id=%s", httpHostPort, facilityID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genHealthCheckAction() func() {
	return func() {
		resp, err := grpcClient.Check(context.Background(), &healthpb.HealthCheckRequest{})
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		if resp.Status != healthpb.HealthCheckResponse_SERVING {
			fmt.Printf("\nhealth status: %v\n", resp.Status)
		}
	}
}
