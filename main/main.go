package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rawbytedev/cursor"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	doc := []byte(strings.Repeat("alpha = 'one'\nbeta = 'two'\n\n# comment\ngamma = 'three'\n", 256))
	quotes := []byte("'")
	sep := []byte("\n")

	var pairs int
	for i := 0; i < 10000; i++ {
		it := cursor.New(doc).Lines(sep)
		for {
			line, ok := it.Next()
			if !ok {
				break
			}
			line.Trim(nil)
			if line.Empty() || line.StartsWith('#') {
				continue
			}
			line.DropUntil('=').Drop(1).TrimFront(nil)
			if _, ok := line.TakeDelimitedAny(quotes); ok {
				pairs++
			}
		}
	}
	log.Printf("scanned %d pairs", pairs)
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
