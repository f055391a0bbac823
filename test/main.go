package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/infinivision/gaealist/deque"
	"github.com/infinivision/gaealist/persistent"
	"github.com/infinivision/gaealist/stack"
	"github.com/nnsgmsone/damrey/logger"
	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v3"
)

type config struct {
	Size       int `yaml:"size"`
	Rounds     int `yaml:"rounds"`
	ArenaPages int `yaml:"arena_pages"`
}

func main() {
	path := flag.String("config", "", "yaml run configuration")
	flag.Parse()

	log := logger.New(os.Stderr, "gaealist")
	cfg := config{Size: 100000, Rounds: 3, ArenaPages: 4}
	if *path != "" {
		data, err := os.ReadFile(*path)
		if err != nil {
			log.Fatalf("read config failed: %v\n", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("parse config failed: %v\n", err)
		}
	}

	dcfg := deque.DefaultConfig()
	dcfg.ArenaPages = cfg.ArenaPages
	l := deque.New[int](dcfg)
	for r := 0; r < cfg.Rounds; r++ {
		for i := 0; i < cfg.Size; i++ {
			if i%2 == 0 {
				l.PushBack(i)
			} else {
				l.PushFront(i)
			}
		}
		l.UpdateFront(func(v *int) { *v = -1 })
		if v, ok := l.PopFront(); !ok || v != -1 {
			log.Fatalf("round %v: front is %v, expected -1\n", r, v)
		}
		fwd, bwd := 0, 0
		for range l.All() {
			fwd++
		}
		for range l.Backward() {
			bwd++
		}
		if fwd != bwd || fwd != l.Len() {
			log.Fatalf("round %v: forward %v, backward %v, len %v\n", r, fwd, bwd, l.Len())
		}
		if err := l.Close(); err != nil {
			log.Fatalf("round %v: close failed: %v\n", r, err)
		}
		fmt.Printf("deque round %v: %v elements, maxrss %vKB\n", r, cfg.Size, maxrss())
	}

	s := stack.New[int]()
	for i := 0; i < cfg.Size; i++ {
		s.Push(i)
	}
	if v, _ := s.Peek(); v != cfg.Size-1 {
		log.Fatalf("stack top is %v, expected %v\n", v, cfg.Size-1)
	}
	s.Close()
	fmt.Printf("stack: %v elements, maxrss %vKB\n", cfg.Size, maxrss())

	p := persistent.New[int]()
	for i := 0; i < cfg.Size; i++ {
		p = p.Prepend(i)
	}
	n := 0
	for range p.Tail().All() {
		n++
	}
	if n != cfg.Size-1 {
		log.Fatalf("persistent tail has %v elements, expected %v\n", n, cfg.Size-1)
	}
	fmt.Printf("persistent: %v elements, maxrss %vKB\n", cfg.Size, maxrss())
}

func maxrss() int64 {
	var ru unix.Rusage

	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return -1
	}
	return int64(ru.Maxrss)
}
