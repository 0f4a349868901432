package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// PriceSample is one observation of a market-chart series.
type PriceSample struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// Asset is a resolved CoinGecko asset.
type Asset struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Resolved bool   `json:"resolved"`
}

// PopularCoins maps display names to CoinGecko API identifiers.
var PopularCoins = map[string]string{
	"Bitcoin":      "bitcoin",
	"Ethereum":     "ethereum",
	"Ripple (XRP)": "ripple",
	"Cardano":      "cardano",
	"Solana":       "solana",
	"Dogecoin":     "dogecoin",
	"Litecoin":     "litecoin",
	"Polkadot":     "polkadot",
	"Chainlink":    "chainlink",
	"Avalanche":    "avalanche-2",
	"Shiba Inu":    "shiba-inu",
	"Uniswap":      "uniswap",
	"Tron":         "tron",
	"Stellar":      "stellar",
	"Bitcoin Cash": "bitcoin-cash",
}

// TickerAliases maps common tickers to CoinGecko API identifiers.
var TickerAliases = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"XRP":  "ripple",
	"ADA":  "cardano",
	"SOL":  "solana",
	"DOGE": "dogecoin",
	"LTC":  "litecoin",
	"DOT":  "polkadot",
	"LINK": "chainlink",
	"AVAX": "avalanche-2",
	"SHIB": "shiba-inu",
	"UNI":  "uniswap",
	"TRX":  "tron",
	"XLM":  "stellar",
	"BCH":  "bitcoin-cash",
}

// ContractChains are the CoinGecko platforms searched when resolving a contract address.
var ContractChains = []string{"ethereum", "binance-smart-chain", "solana"}

// coinIDToName is the reverse mapping of PopularCoins.
var coinIDToName map[string]string

func init() {
	coinIDToName = make(map[string]string, len(PopularCoins))
	for name, id := range PopularCoins {
		coinIDToName[id] = name
	}
}

// PopularCoinNames returns the catalogue display names in alphabetical order.
func PopularCoinNames() []string {
	names := make([]string, 0, len(PopularCoins))
	for name := range PopularCoins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupCatalogue resolves a display name, ticker or known id without any network call.
func LookupCatalogue(input string) (Asset, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Asset{}, false
	}
	for name, id := range PopularCoins {
		if strings.EqualFold(name, input) {
			return Asset{ID: id, Name: name, Resolved: true}, true
		}
	}
	if id, ok := TickerAliases[strings.ToUpper(input)]; ok {
		return Asset{ID: id, Name: coinIDToName[id], Resolved: true}, true
	}
	if name, ok := coinIDToName[strings.ToLower(input)]; ok {
		return Asset{ID: strings.ToLower(input), Name: name, Resolved: true}, true
	}
	return Asset{}, false
}

// LooksLikeContract reports whether input has the shape of an EVM contract address.
func LooksLikeContract(input string) bool {
	input = strings.TrimSpace(input)
	return strings.HasPrefix(input, "0x") && len(input) > 20
}

// FormatPrice keeps significant digits for sub-cent tokens.
func FormatPrice(p float64) string {
	switch {
	case p >= 1:
		return fmt.Sprintf("$%.2f", p)
	case p >= 0.01:
		return fmt.Sprintf("$%.4f", p)
	default:
		return fmt.Sprintf("$%.8f", p)
	}
}
