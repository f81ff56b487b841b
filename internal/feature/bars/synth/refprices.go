package synth

// referencePrices anchors synthetic series for commonly charted symbols so a
// fallback chart opens in the neighborhood users expect. Loaded once at
// process start and never mutated; lookups are case-insensitive via
// seedPrice. Symbols missing here get a random seed instead.
var referencePrices = map[string]float64{
	"SPY":  580.0,
	"QQQ":  500.0,
	"DIA":  430.0,
	"IWM":  225.0,
	"AAPL": 235.0,
	"MSFT": 430.0,
	"GOOG": 180.0,
	"AMZN": 210.0,
	"NVDA": 140.0,
	"META": 590.0,
	"TSLA": 260.0,
	"AMD":  155.0,
	"NFLX": 750.0,
	"INTC": 24.0,
	"JPM":  240.0,
	"V":    290.0,
	"KO":   63.0,
	"DIS":  95.0,
	"BA":   155.0,
	"XOM":  118.0,
}
