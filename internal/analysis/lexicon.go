package analysis

// Valences on a -4..4 scale. General-purpose polarity words plus market slang.
var defaultLexicon = map[string]float64{
	// positive
	"good": 1.9, "great": 3.1, "excellent": 3.2, "amazing": 2.8, "strong": 2.3,
	"stronger": 2.0, "positive": 2.6, "optimistic": 2.0, "confident": 2.2,
	"win": 2.8, "wins": 2.7, "winning": 2.4, "success": 2.7, "successful": 2.8,
	"gain": 2.4, "gains": 2.2, "gained": 1.9, "profit": 1.9, "profits": 1.9,
	"profitable": 2.0, "rise": 1.4, "rises": 1.4, "rising": 1.5, "rose": 1.3,
	"up": 0.8, "higher": 1.2, "high": 0.9, "record": 1.2, "boost": 1.7,
	"boosts": 1.7, "improve": 1.9, "improves": 1.9, "improved": 2.1,
	"recover": 1.6, "recovers": 1.6, "recovery": 1.6, "rebound": 1.5,
	"rebounds": 1.5, "support": 1.7, "supports": 1.4, "approve": 2.0,
	"approved": 1.8, "approval": 2.2, "adoption": 1.6, "partnership": 1.5,
	"growth": 2.1, "grow": 1.7, "grows": 1.6, "growing": 1.8, "upgrade": 1.6,
	"launch": 0.9, "launches": 0.9, "innovation": 1.8, "breakthrough": 2.4,
	"opportunity": 1.8, "safe": 1.9, "secure": 1.4, "trust": 2.3,
	"happy": 2.7, "love": 3.2, "like": 1.5, "best": 3.2, "better": 1.9,
	"bull": 1.5, "bullish": 2.5, "rally": 2.2, "rallies": 2.2, "rallied": 2.1,
	"surge": 2.0, "surges": 2.0, "surged": 2.0, "soar": 2.4, "soars": 2.4,
	"soared": 2.4, "jump": 1.3, "jumps": 1.3, "jumped": 1.3, "breakout": 2.0,
	"moon": 2.0, "mooning": 2.3, "pump": 1.2, "ath": 2.2, "uptrend": 1.9,
	"inflows": 1.3, "accumulation": 1.1, "buy": 0.9, "buying": 0.9,
	"outperform": 1.8, "outperforms": 1.8, "beat": 1.0, "beats": 1.1,

	// negative
	"bad": -2.5, "worse": -2.1, "worst": -3.1, "terrible": -2.1, "awful": -2.0,
	"weak": -1.9, "weaker": -1.9, "negative": -2.7, "pessimistic": -1.5,
	"fear": -2.2, "fears": -1.8, "panic": -2.3, "worry": -1.9, "worries": -1.8,
	"concern": -1.4, "concerns": -1.2, "risk": -1.1, "risky": -1.4,
	"loss": -1.3, "losses": -1.7, "lose": -1.7, "loses": -1.3, "lost": -1.3,
	"fall": -1.2, "falls": -1.3, "falling": -1.3, "fell": -1.3, "drop": -1.1,
	"drops": -1.2, "dropped": -1.2, "decline": -1.5, "declines": -1.5,
	"declined": -1.4, "down": -0.8, "lower": -1.0, "low": -1.1, "slump": -2.0,
	"slumps": -2.0, "plunge": -2.3, "plunges": -2.3, "plunged": -2.3,
	"tumble": -1.9, "tumbles": -1.9, "sink": -1.3, "sinks": -1.3,
	"fail": -2.5, "fails": -2.3, "failed": -2.3, "failure": -2.3,
	"ban": -2.6, "bans": -2.6, "banned": -2.0, "lawsuit": -1.8, "sue": -1.9,
	"sues": -1.9, "sued": -2.1, "fraud": -3.0, "scam": -2.9, "hack": -2.0,
	"hacked": -2.3, "exploit": -1.9, "exploited": -2.2, "stolen": -2.2,
	"theft": -2.4, "crisis": -3.1, "collapse": -2.9, "collapses": -2.9,
	"bankrupt": -2.6, "bankruptcy": -2.7, "warning": -1.4, "warns": -1.4,
	"reject": -1.7, "rejected": -2.1, "rejects": -1.7, "delay": -1.3,
	"delays": -1.3, "delayed": -0.9, "problem": -1.7, "problems": -1.7,
	"trouble": -1.7, "hate": -2.7, "sad": -2.1, "angry": -2.3,
	"bear": -1.3, "bearish": -2.5, "crash": -2.7, "crashes": -2.7,
	"crashed": -2.7, "dump": -1.6, "dumps": -1.6, "dumping": -1.6,
	"selloff": -2.0, "sell-off": -2.0, "liquidation": -1.7,
	"liquidations": -1.7, "liquidated": -1.9, "rug": -2.5, "rugpull": -3.0,
	"downtrend": -1.8, "outflows": -1.2, "volatile": -0.9, "volatility": -0.5,
	"sell": -0.8, "selling": -0.9, "fud": -1.9, "rekt": -2.5,
	"crackdown": -2.1, "probe": -1.1, "investigation": -1.0,
}

var defaultNegators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "none": {}, "nobody": {}, "nothing": {},
	"neither": {}, "nor": {}, "without": {}, "cannot": {}, "cant": {},
	"dont": {}, "doesnt": {}, "didnt": {}, "isnt": {}, "wasnt": {},
	"wont": {}, "aint": {}, "hardly": {}, "rarely": {},
}

var defaultBoosters = map[string]float64{
	"very": boosterIncrease, "extremely": boosterIncrease, "hugely": boosterIncrease,
	"massive": boosterIncrease, "massively": boosterIncrease, "really": boosterIncrease,
	"incredibly": boosterIncrease, "highly": boosterIncrease, "huge": boosterIncrease,
	"sharply": boosterIncrease, "strongly": boosterIncrease, "significantly": boosterIncrease,
	"slightly": -boosterIncrease, "somewhat": -boosterIncrease, "barely": -boosterIncrease,
	"marginally": -boosterIncrease,
}
