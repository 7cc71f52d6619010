package gen

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/jvk36/cafes-with-wifi/model"
)

func SeedOnce() { gofakeit.Seed(time.Now().UnixNano()) }

// FakeCafe builds a plausible cafe row for seeding and tests. Callers that
// need a unique name should decorate Name themselves.
func FakeCafe() model.Cafe {
	seats := fmt.Sprintf("%d-%d", gofakeit.Number(10, 30), gofakeit.Number(40, 80))
	price := fmt.Sprintf("£%.2f", gofakeit.Price(1.5, 4.5))

	return model.Cafe{
		Name:         gofakeit.Company() + " Cafe",
		MapURL:       gofakeit.URL(),
		ImgURL:       gofakeit.URL(),
		Location:     gofakeit.City(),
		HasSockets:   gofakeit.Bool(),
		HasToilet:    gofakeit.Bool(),
		HasWifi:      gofakeit.Bool(),
		CanTakeCalls: gofakeit.Bool(),
		Seats:        &seats,
		CoffeePrice:  &price,
	}
}
