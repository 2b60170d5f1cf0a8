/*
 * chess-ai-sub001 - bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 chess-ai-sub001 contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/ASmolyar/chess-ai-sub001/internal/config"
	"github.com/ASmolyar/chess-ai-sub001/internal/httpapi"
	"github.com/ASmolyar/chess-ai-sub001/internal/uci"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	mode := flag.String("mode", "uci", "driver to run\n(uci|http)")
	httpAddr := flag.String("http-addr", "", "listen address for -mode=http (overrides config.toml [HTTP] Addr)")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	switch *mode {
	case "uci":
		uci.NewHandler(os.Stdin, os.Stdout).Loop()
	case "http":
		addr := config.Settings.HTTP.Addr
		if *httpAddr != "" {
			addr = *httpAddr
		}
		fmt.Fprintf(os.Stderr, "chess-ai-sub001: listening on %s\n", addr)
		server := httpapi.NewServer()
		if err := http.ListenAndServe(addr, server.Router()); err != nil {
			fmt.Fprintf(os.Stderr, "chess-ai-sub001: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "chess-ai-sub001: unknown -mode %q (want uci|http)\n", *mode)
		os.Exit(1)
	}
}
