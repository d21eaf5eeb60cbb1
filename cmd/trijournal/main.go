package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aleksaelezovic/trijournal/internal/sink"
	"github.com/aleksaelezovic/trijournal/pkg/journal"
	"github.com/aleksaelezovic/trijournal/pkg/rdf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: trijournal <command> [args]")
		fmt.Println("Commands:")
		fmt.Println("  demo <file>           - Journal sample triples to a file")
		fmt.Println("  append <file>         - Journal N-Triples from stdin to a file")
		fmt.Println("  verify <badger-dir>   - Verify checksums of a badger-backed journal")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "demo":
		if len(os.Args) < 3 {
			fmt.Println("Usage: trijournal demo <file>")
			os.Exit(1)
		}
		runDemo(os.Args[2])
	case "append":
		if len(os.Args) < 3 {
			fmt.Println("Usage: trijournal append <file>")
			os.Exit(1)
		}
		runAppend(os.Args[2])
	case "verify":
		if len(os.Args) < 3 {
			fmt.Println("Usage: trijournal verify <badger-dir>")
			os.Exit(1)
		}
		runVerify(os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func runDemo(path string) {
	fmt.Println("=== Trijournal Demo ===")
	fmt.Println()

	fileSink, err := sink.NewFileSink(path)
	if err != nil {
		log.Fatalf("Failed to open journal file: %v", err)
	}

	j := journal.NewJournal()
	defer j.CloseAll()

	const (
		collection = "demo"
		graph      = "http://example.org/graph"
	)

	if err := j.Register(collection, graph, fileSink, journal.FormatTurtle, ".ttl"); err != nil {
		log.Fatalf("Failed to register journal stream: %v", err)
	}
	if err := j.Initialise(collection, graph); err != nil {
		log.Fatalf("Failed to initialise journal stream: %v", err)
	}

	alice := rdf.NewNamedNode("http://example.org/alice")
	name := rdf.NewNamedNode("http://xmlns.com/foaf/0.1/name")
	age := rdf.NewNamedNode("http://xmlns.com/foaf/0.1/age")
	birthDate := rdf.NewNamedNode("http://example.org/birthDate")
	updated := rdf.NewNamedNode("http://example.org/updated")

	triples := []*rdf.Triple{
		rdf.NewTriple(alice, name, rdf.NewLiteralWithLanguage("Alice", "en")),
		rdf.NewTriple(alice, age, rdf.NewIntegerLiteral(30)),
		rdf.NewTriple(alice, birthDate, rdf.NewDateLiteral(1994, 1, 9)),
		rdf.NewTriple(alice, updated, rdf.NewDateTimeLiteral(2024, 1, 9, 13, 5, 9)),
	}

	fmt.Println("Journaling sample triples...")
	for _, triple := range triples {
		if err := j.WriteTriple(collection, graph, triple.Subject, triple.Predicate, triple.Object); err != nil {
			log.Fatalf("Failed to journal triple: %v", err)
		}
		fmt.Printf("  ✓ %s\n", triple)
	}

	if err := j.Finalise(collection, graph); err != nil {
		log.Fatalf("Failed to finalise journal stream: %v", err)
	}

	fmt.Printf("\nJournal written to %s\n", path)
}

func runAppend(path string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("Failed to read stdin: %v", err)
	}

	triples, err := rdf.NewNTriplesParser(string(data)).Parse()
	if err != nil {
		log.Fatalf("Failed to parse N-Triples input: %v", err)
	}

	fileSink, err := sink.NewFileSink(path)
	if err != nil {
		log.Fatalf("Failed to open journal file: %v", err)
	}

	j := journal.NewJournal()
	defer j.CloseAll()

	const (
		collection = "default"
		graph      = "http://example.org/graph"
	)

	if err := j.Register(collection, graph, fileSink, journal.FormatTurtle, ".ttl"); err != nil {
		log.Fatalf("Failed to register journal stream: %v", err)
	}
	if err := j.Initialise(collection, graph); err != nil {
		log.Fatalf("Failed to initialise journal stream: %v", err)
	}

	for _, triple := range triples {
		if err := j.WriteTriple(collection, graph, triple.Subject, triple.Predicate, triple.Object); err != nil {
			log.Fatalf("Failed to journal triple: %v", err)
		}
	}

	if err := j.Finalise(collection, graph); err != nil {
		log.Fatalf("Failed to finalise journal stream: %v", err)
	}

	fmt.Printf("Journaled %d triples to %s\n", len(triples), path)
}

func runVerify(path string) {
	badgerSink, err := sink.NewBadgerSink(path)
	if err != nil {
		log.Fatalf("Failed to open badger journal: %v", err)
	}
	defer badgerSink.Close()

	records, err := badgerSink.Replay()
	if err != nil {
		log.Fatalf("Journal verification failed: %v", err)
	}

	fmt.Printf("Verified %d journal records\n", len(records))
}
