package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"

	"github.com/jvk36/cafes-with-wifi/config"
	"github.com/jvk36/cafes-with-wifi/database"
	"github.com/jvk36/cafes-with-wifi/gen"
	"github.com/jvk36/cafes-with-wifi/model"
	"github.com/jvk36/cafes-with-wifi/store"
)

// Workbook column layout, matching the header row:
// name | map_url | img_url | location | has_sockets | has_toilet | has_wifi | can_take_calls | seats | coffee_price
func main() {
	file := flag.String("file", "", "path to an .xlsx workbook of cafes (Sheet1)")
	count := flag.Int("count", 0, "number of fake cafes to generate")
	flag.Parse()

	if *file == "" && *count <= 0 {
		log.Fatal("nothing to do: pass -file or -count")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	cafeStore := store.NewGormStore(db, cfg.StoreTimeout)
	ctx := context.Background()

	if *file != "" {
		if err := importWorkbook(ctx, cafeStore, *file); err != nil {
			log.Fatalf("Import failed: %v", err)
		}
	}
	if *count > 0 {
		seedFakes(ctx, cafeStore, *count)
	}
}

func importWorkbook(ctx context.Context, cafeStore store.CafeStore, path string) error {
	xl, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer xl.Close()

	rows, err := xl.GetRows("Sheet1")
	if err != nil {
		return fmt.Errorf("read Sheet1: %w", err)
	}
	if len(rows) < 2 {
		return errors.New("workbook must have a header row and at least one data row")
	}

	var added, skipped int
	for i, row := range rows[1:] {
		cafe, err := cafeFromRow(row)
		if err != nil {
			log.Printf("row %d skipped: %v", i+2, err)
			skipped++
			continue
		}

		created, err := cafeStore.Insert(ctx, cafe)
		if errors.Is(err, store.ErrDuplicateName) {
			log.Printf("row %d skipped: cafe %q already exists", i+2, cafe.Name)
			skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		log.Printf("added cafe %q (id=%d)", created.Name, created.ID)
		added++
	}

	log.Printf("Import finished: %d added, %d skipped", added, skipped)
	return nil
}

func cafeFromRow(row []string) (model.Cafe, error) {
	if len(row) < 8 {
		return model.Cafe{}, fmt.Errorf("expected at least 8 columns, got %d", len(row))
	}

	name := strings.TrimSpace(row[0])
	mapURL := strings.TrimSpace(row[1])
	imgURL := strings.TrimSpace(row[2])
	location := strings.TrimSpace(row[3])
	if name == "" || mapURL == "" || imgURL == "" || location == "" {
		return model.Cafe{}, errors.New("name, map_url, img_url and location are required")
	}

	cafe := model.Cafe{
		Name:     name,
		MapURL:   mapURL,
		ImgURL:   imgURL,
		Location: location,
	}

	flags := []*bool{&cafe.HasSockets, &cafe.HasToilet, &cafe.HasWifi, &cafe.CanTakeCalls}
	for i, dst := range flags {
		v, err := parseFlag(row[4+i])
		if err != nil {
			return model.Cafe{}, fmt.Errorf("column %d: %w", 5+i, err)
		}
		*dst = v
	}

	if len(row) > 8 && strings.TrimSpace(row[8]) != "" {
		seats := strings.TrimSpace(row[8])
		cafe.Seats = &seats
	}
	if len(row) > 9 && strings.TrimSpace(row[9]) != "" {
		price := strings.TrimSpace(row[9])
		cafe.CoffeePrice = &price
	}

	return cafe, nil
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}

func seedFakes(ctx context.Context, cafeStore store.CafeStore, count int) {
	gen.SeedOnce()

	// Fake company names collide now and then, so allow retries up to a cap.
	added := 0
	for attempts := 0; added < count && attempts < count*10; attempts++ {
		created, err := cafeStore.Insert(ctx, gen.FakeCafe())
		if errors.Is(err, store.ErrDuplicateName) {
			continue
		}
		if err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		log.Printf("added cafe %q (id=%d)", created.Name, created.ID)
		added++
	}

	log.Printf("Seeded %d fake cafes", added)
}
