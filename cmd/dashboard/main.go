// Terminal dashboard for browsing draw results, feature rows and gap
// charts served by the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/loterialab/sorteos-backend/pkg/dashboard"
	"github.com/loterialab/sorteos-backend/pkg/lotteries"
)

func main() {
	var (
		apiURL    = flag.String("api", os.Getenv("SORTEOS_API_URL"), "API base URL (default http://localhost:8000)")
		lottery   = flag.String("lottery", "", "lottery slug: euromillones, la-primitiva or el-gordo")
		fromDate  = flag.String("from", "", "from date (YYYY-MM-DD)")
		toDate    = flag.String("to", "", "to date (YYYY-MM-DD)")
		page      = flag.Int("page", 1, "page number (pages of 20)")
		features  = flag.Bool("features", false, "show feature rows instead of draws")
		gapsDate  = flag.String("gaps", "", "show the 31-day gap chart ending at this date (YYYY-MM-DD)")
		drawOrder = flag.Bool("acta", false, "show numbers in extraction order when the record allows")
	)
	flag.Parse()

	if *lottery == "" {
		flag.Usage()
		os.Exit(2)
	}
	spec, ok := lotteries.BySlug(*lottery)
	if !ok {
		log.Fatalf("Unknown lottery: %s", *lottery)
	}

	client := dashboard.NewClient(*apiURL)
	ctx := context.Background()

	switch {
	case *gapsDate != "":
		showGaps(ctx, client, spec, *gapsDate)
	case *features:
		showFeatures(ctx, client, spec, *page)
	default:
		showDraws(ctx, client, spec, *fromDate, *toDate, *page, *drawOrder)
	}
}

func showDraws(ctx context.Context, client *dashboard.Client, spec lotteries.Spec, from, to string, page int, drawOrder bool) {
	q := dashboard.NewDrawQuery(client)
	q.Lottery = spec.Slug
	q.FromDate = from
	q.ToDate = to
	q.Search(ctx)
	for p := 1; p < page && q.Err() == ""; p++ {
		q.NextPage(ctx)
	}
	if q.Err() != "" {
		log.Fatalf("Error: %s", q.Err())
	}

	fmt.Printf("%s: %d sorteos (página %d de %d)\n\n", spec.Name, q.Total(), q.CurrentPage(), q.TotalPages())
	for _, draw := range q.Rows() {
		fmt.Println(dashboard.RenderDrawCard(draw, spec, drawOrder))
	}
}

func showFeatures(ctx context.Context, client *dashboard.Client, spec lotteries.Spec, page int) {
	q := dashboard.NewFeatureQuery(client, spec)
	q.Load(ctx)
	for p := 1; p < page && q.Err() == ""; p++ {
		q.NextPage(ctx)
	}
	if q.Err() != "" {
		log.Fatalf("Error: %s", q.Err())
	}

	fmt.Printf("%s: %d filas (página %d de %d)\n\n", spec.Name, q.Total(), q.CurrentPage(), q.TotalPages())
	for _, row := range q.Rows() {
		fmt.Printf("%-12s %-10s %v", row.DrawDate, row.Weekday, row.MainNumbers)
		if len(row.HotMain) > 0 {
			fmt.Printf("  calientes %v  fríos %v", row.HotMain, row.ColdMain)
		}
		fmt.Println()
	}
}

func showGaps(ctx context.Context, client *dashboard.Client, spec lotteries.Spec, endDate string) {
	b := dashboard.NewGapBuilder(client, spec)
	if err := b.EnsureHistoryLoaded(ctx); err != nil {
		log.Fatalf("Error loading number history: %v", err)
	}
	b.LoadGapsForDate(endDate)
	if b.Err() != "" {
		log.Fatalf("Error: %s", b.Err())
	}

	fmt.Printf("%s: apariciones en los 31 días hasta %s\n\n", spec.Name, endDate)
	for _, r := range spec.Categories() {
		points := b.Points()[string(r.Category)]
		fmt.Printf("%s (%d puntos)\n", r.Category, len(points))
		for _, p := range points {
			fmt.Printf("  %s  %2d\n", p.Date, p.Number)
		}
	}
}
