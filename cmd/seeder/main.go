package main

import (
	"bufio"
	"context"
	"flag"
	"iter"
	"log/slog"
	"os"

	"github.com/poiesic/diarit"
	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/ingestion"
)

var entries = []string{
	"朝からジョギングをして、とても気持ちが良かった。",
	"新しいプロジェクトのキックオフがあった。少し緊張したけど楽しみ。",
	"友達とカフェで長話をした。久しぶりに笑った気がする。",
	"残業が続いていて疲れが取れない。早く週末になってほしい。",
	"母から電話があった。元気そうで安心した。",
	"雨の日は気分が沈みがちだけど、読書がはかどった。",
	"会議でプレゼンがうまくいった。準備した甲斐があった。",
	"夜眠れなくて、昔のことを色々考えてしまった。",
	"近所の公園の桜が咲き始めた。春が来たと実感する。",
	"健康診断の結果が良くて嬉しかった。運動を続けよう。",
	"仕事でミスをして落ち込んだ。明日は挽回したい。",
	"家族で晩ご飯を食べた。何気ない時間が一番幸せかもしれない。",
	"新しいレシピに挑戦したら意外と美味しくできた。",
	"電車が遅れて遅刻しそうになった。朝は余裕を持ちたい。",
	"同僚に相談に乗ってもらった。話すだけで楽になるものだ。",
	"休日に部屋の掃除をした。すっきりして気分も軽い。",
	"昇進の話が出た。嬉しい反面、責任が増えるのは不安だ。",
	"ジムに入会した。三日坊主にならないようにしたい。",
	"映画を観て泣いてしまった。たまには感情を出すのもいい。",
	"祖父の誕生日に家族が集まった。賑やかで楽しい一日だった。",
}

var (
	seedFileName = flag.String("src", "", "file of seed diary entries, one per line")
	dbPath       = flag.String("db", "./diary_db", "path to BadgerDB database directory")
	userID       = flag.String("user", "demo-user", "user to seed")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// linesFromFile returns an iterator over lines in a file.
func linesFromFile(filename string) (iter.Seq[string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}, nil
}

// linesFromSlice returns an iterator over a slice of strings.
func linesFromSlice(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}
}

// ingestBatched reads from a source iterator and ingests entries in batches.
func ingestBatched(ctx context.Context, pipeline *ingestion.Pipeline, user string, source iter.Seq[string], batchSize int) error {
	batch := make([]string, 0, batchSize)

	for line := range source {
		batch = append(batch, line)
		if len(batch) == batchSize {
			if err := pipeline.Ingest(ctx, user, core.RecordTypeDiary, batch, nil); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	// Process any remaining lines
	if len(batch) > 0 {
		if err := pipeline.Ingest(ctx, user, core.RecordTypeDiary, batch, nil); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	journal, err := diarit.NewJournal(*dbPath)
	if err != nil {
		panic(err)
	}
	defer journal.Close()

	ingester, err := journal.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer ingester.Release()

	ctx := context.Background()

	// Determine source of seed data
	var source iter.Seq[string]
	if seedFileName != nil && *seedFileName != "" {
		source, err = linesFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = linesFromSlice(entries)
	}

	// Ingest in batches of 5
	if err := ingestBatched(ctx, ingester, *userID, source, 5); err != nil {
		panic(err)
	}
}
