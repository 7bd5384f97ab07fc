package refdata

// Benchmark carries the reference market price for a city tier.
type Benchmark struct {
	City     string
	AvgPrice int
}

// DefaultCity is the fallback tier used for unknown city keys.
const DefaultCity = "regional"

// DefaultExpenseRate is used when the workplace key is unknown.
const DefaultExpenseRate = 0.15

var benchmarks = map[string]Benchmark{
	"moscow":   {City: "moscow", AvgPrice: 4000},
	"spb":      {City: "spb", AvgPrice: 3500},
	"million":  {City: "million", AvgPrice: 2800},
	"regional": {City: "regional", AvgPrice: 2200},
}

// expenseRates maps a workplace key to the fraction of private revenue
// consumed by overhead.
var expenseRates = map[string]float64{
	"home":        0.15,
	"coworking":   0.20,
	"rent-chair":  0.25,
	"rent-studio": 0.30,
	"own":         0.40,
}

// Tables bundles the reference lookups so the calculator and classifier can
// take them as an explicit dependency instead of reading package globals.
type Tables struct {
	benchmarks map[string]Benchmark
	expenses   map[string]float64
}

// Default returns the production reference tables.
func Default() Tables {
	return Tables{benchmarks: benchmarks, expenses: expenseRates}
}

// BenchmarkFor resolves the city benchmark. Unknown keys degrade to the
// regional tier; known reports whether the key matched.
func (t Tables) BenchmarkFor(city string) (bm Benchmark, known bool) {
	if bm, ok := t.benchmarks[city]; ok {
		return bm, true
	}
	return t.benchmarks[DefaultCity], false
}

// ExpenseRateFor resolves the workplace overhead rate with the default
// fallback for unknown keys.
func (t Tables) ExpenseRateFor(workPlace string) (rate float64, known bool) {
	if rate, ok := t.expenses[workPlace]; ok {
		return rate, true
	}
	return DefaultExpenseRate, false
}
