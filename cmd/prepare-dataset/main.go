// Command prepare-dataset converts the raw heat-flow database export and
// the plate-boundary point list into the compact scored JSON the globe
// client renders.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"thermaglobe/internal/heatflow"
)

func main() {
	measurementsPath := flag.String("measurements", "datasets/ghfdb.csv", "heat-flow measurements CSV (lat_NS, long_EW, qc, q)")
	boundariesPath := flag.String("boundaries", "datasets/plate_boundaries.csv", "plate boundary points CSV (lat, lon)")
	outPath := flag.String("out", "data/geothermal_data.json", "output JSON path")
	flag.Parse()

	measurementsFile, err := os.Open(*measurementsPath)
	if err != nil {
		log.Fatalf("opening measurements: %v", err)
	}
	defer measurementsFile.Close()

	measurements, err := heatflow.ReadMeasurements(measurementsFile)
	if err != nil {
		log.Fatalf("parsing measurements: %v", err)
	}

	boundariesFile, err := os.Open(*boundariesPath)
	if err != nil {
		log.Fatalf("opening boundaries: %v", err)
	}
	defer boundariesFile.Close()

	boundaries, err := heatflow.ReadBoundaries(boundariesFile)
	if err != nil {
		log.Fatalf("parsing boundaries: %v", err)
	}

	records, err := heatflow.Score(measurements, boundaries)
	if err != nil {
		log.Fatalf("scoring: %v", err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("creating output: %v", err)
	}
	defer out.Close()

	if err := json.NewEncoder(out).Encode(records); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	log.Printf("exported %d records to %s", len(records), *outPath)
}
