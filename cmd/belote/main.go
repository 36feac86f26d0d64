package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/samsja/belote-libre-v2/internal/bots"
	"github.com/samsja/belote-libre-v2/internal/engine"
	"github.com/samsja/belote-libre-v2/internal/engine/sim"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "shuffle seed, 0 for an unpredictable deck")
	dealsFlag := flag.Int("deals", 1, "number of chained deals")
	contextFlag := flag.String("context", "atout:H", "game context: tout, sans or atout:<suit>")
	ruleFlag := flag.String("rule", "default", "play rule: default or none")
	presetFlag := flag.String("preset", "belote", "card strengths: classic or belote")
	trumpOrderFlag := flag.String("trump-order", "", "override the trump ranking: declaration, belote-trump or belote-plain")
	botsFlag := flag.String("bots", "normal,easy,normal,easy", "comma separated bot per seat: first, easy or normal")
	logLevelFlag := flag.String("log-level", "warning", "logrus level")
	flag.Parse()

	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevelFlag)
	if err != nil {
		pterm.Error.Printfln("bad log level: %v", err)
		os.Exit(2)
	}
	log.SetLevel(level)

	cfg, err := buildConfig(*seedFlag, *dealsFlag, *contextFlag, *ruleFlag, *presetFlag, *trumpOrderFlag, *botsFlag)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	cfg.Log = log

	deals, err := sim.RunChain(cfg)
	for i, d := range deals {
		if perr := printDeal(i, d); perr != nil {
			log.WithError(perr).Error("render")
		}
	}
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	pterm.Success.Printfln("%d deals played, 32 cards accounted for", len(deals))
}

func buildConfig(seed int64, deals int, context, ruleName, preset, trumpOrder, botList string) (sim.ChainConfig, error) {
	if deals <= 0 {
		return sim.ChainConfig{}, fmt.Errorf("deals must be positive, got %d", deals)
	}
	rules, err := engine.PresetByName(preset)
	if err != nil {
		return sim.ChainConfig{}, err
	}
	if trumpOrder != "" {
		if rules.TrumpOrder, err = engine.ParseRanking(trumpOrder); err != nil {
			return sim.ChainConfig{}, err
		}
	}
	ctx, err := engine.ParseGameContext(context)
	if err != nil {
		return sim.ChainConfig{}, err
	}
	rule, err := engine.RuleByName(ruleName, rules.TrumpOrder, rules.PlainOrder)
	if err != nil {
		return sim.ChainConfig{}, err
	}
	table, err := bots.Table(strings.Split(botList, ","), rule, rules, seed)
	if err != nil {
		return sim.ChainConfig{}, err
	}
	cfg := sim.ChainConfig{
		Seed:    seed,
		Deals:   deals,
		Rules:   rules,
		Rule:    rule,
		Context: ctx,
		Bots:    table,
	}
	if seed == 0 {
		cfg.Source = engine.NewStreamSource()
	}
	return cfg, nil
}
