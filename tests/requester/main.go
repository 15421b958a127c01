package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const baseURL = "http://localhost:8080/guest-order"

type pair struct {
	OrderID     string `json:"orderId"`
	AccessToken string `json:"accessToken"`
}

// Читает из stdin вывод order-generator и гоняет запросы по этим парам,
// иногда подменяя id или токен, чтобы в нагрузке был и путь 404.
func main() {
	pairs := readPairs()
	if len(pairs) == 0 {
		fmt.Println("no id/token pairs on stdin, pipe order-generator output in")
		os.Exit(1)
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(pairs[rand.Intn(len(pairs))]) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func readPairs() []pair {
	var pairs []pair
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		pairs = append(pairs, pair{OrderID: fields[0], AccessToken: fields[1]})
	}
	return pairs
}

func doRequest(p pair) {
	switch rand.Intn(5) {
	case 0:
		p.OrderID = uuid.NewString()
	case 1:
		p.AccessToken = strings.Repeat("0", 64)
	}

	body, _ := json.Marshal(p)
	resp, err := http.Post(baseURL, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("POST", p.OrderID, "->", resp.Status)
	resp.Body.Close()
}
