// wfccharts renders the backtracking benchmark figures (decision node
// distribution, run times, backtrack counts) into figs/.
//
// Usage:
//
//	wfccharts
//	wfccharts run [--out figs] [--only NAME]... [--data DIR] [--csv] [--markdown] [--manifest]
//	wfccharts list
//	wfccharts table [--markdown]
//	wfccharts drift --data DIR [--against DIR]
package main

import (
	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("wfccharts")
	}
}
