package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/pixelcraft/config"
	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/kafka"
	"github.com/Gunvolt24/pixelcraft/pkg/validate"
)

// CLI-приложение для валидации фида товаров; с -publish валидные товары уходят в Kafka.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	publish := flag.Bool("publish", false, "publish valid products to the catalog feed topic")
	timeout := flag.Duration("timeout", 30*time.Second, "publish timeout")
	flag.Parse()

	ctx := context.Background()
	productValidator := validate.NewProductValidator()

	format := validate.InputFormat(*formatStr)
	path := *inputPath

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	var valid bytes.Buffer
	var out io.Writer = os.Stdout
	if *publish {
		out = io.MultiWriter(os.Stdout, &valid)
	}

	summary, err := validate.ValidateFile(ctx, productValidator, path, format, out)
	for _, le := range summary.Errors {
		fmt.Fprintf(os.Stderr, "line %d: %v\n", le.Line, le.Err)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)

	if !*publish || summary.Valid == 0 {
		return
	}

	_ = godotenv.Load(".env.local")
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	products, err := readProducts(&valid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read validated products: %v\n", err)
		os.Exit(1)
	}

	pub := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer func() { _ = pub.Close() }()

	pubCtx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()
	if err := pub.Publish(pubCtx, products...); err != nil {
		fmt.Fprintf(os.Stderr, "publish: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "published %d products to %s\n", len(products), cfg.Kafka.Topic)
}

// readProducts — разбор канонического JSONL, который пишет validate.
func readProducts(r io.Reader) ([]*domain.Product, error) {
	var products []*domain.Product
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		var p domain.Product
		if err := json.Unmarshal(scanner.Bytes(), &p); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, scanner.Err()
}
