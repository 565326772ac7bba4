package probe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// TrialResult is the outcome of one aggregation trial: either the rendered
// result table or the error (including recovered panics) the call produced.
type TrialResult struct {
	Name   string
	Output string
	Err    error
}

// OK reports whether the trial succeeded.
func (r TrialResult) OK() bool { return r.Err == nil }

type trial struct {
	name string
	run  func(df dataframe.DataFrame) (string, error)
}

// SampleFrame builds the fixed frame all trials run against: three
// departments, five rows, two numeric columns.
func SampleFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"Engineering", "Sales", "Engineering", "Marketing", "Sales"}, series.String, "department"),
		series.New([]int{70000, 55000, 65000, 60000, 52000}, series.Int, "salary"),
		series.New([]int{35, 28, 32, 30, 27}, series.Int, "age"),
	)
}

// RunTrials exercises each aggregation path against df and reports per-trial
// success or failure. A failing library call never aborts the run; every
// trial always yields a result.
func RunTrials(df dataframe.DataFrame) []TrialResult {
	if df.Err != nil {
		return []TrialResult{{Name: "build frame", Err: df.Err}}
	}

	trials := []trial{
		{
			name: "count shortcut",
			run: func(df dataframe.DataFrame) (string, error) {
				return aggregate(df, []dataframe.AggregationType{dataframe.Aggregation_COUNT}, []string{"salary"})
			},
		},
		{
			name: "group lengths",
			run:  groupLengths,
		},
		{
			name: "sum shortcut",
			run: func(df dataframe.DataFrame) (string, error) {
				return aggregate(df,
					[]dataframe.AggregationType{dataframe.Aggregation_SUM, dataframe.Aggregation_SUM},
					[]string{"salary", "age"})
			},
		},
		{
			name: "mean shortcut",
			run: func(df dataframe.DataFrame) (string, error) {
				return aggregate(df,
					[]dataframe.AggregationType{dataframe.Aggregation_MEAN, dataframe.Aggregation_MEAN},
					[]string{"salary", "age"})
			},
		},
		{
			name: "explicit aggregation expression",
			run: func(df dataframe.DataFrame) (string, error) {
				return aggregate(df,
					[]dataframe.AggregationType{dataframe.Aggregation_MEAN, dataframe.Aggregation_MAX},
					[]string{"salary", "age"})
			},
		},
	}

	results := make([]TrialResult, 0, len(trials))
	for _, tr := range trials {
		results = append(results, runTrial(df, tr))
	}
	return results
}

// runTrial executes one trial, converting panics inside the library into
// trial failures.
func runTrial(df dataframe.DataFrame, tr trial) (res TrialResult) {
	res = TrialResult{Name: tr.name}
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic: %v", r)
		}
	}()

	out, err := tr.run(df)
	res.Output = out
	res.Err = err
	return res
}

func aggregate(df dataframe.DataFrame, typs []dataframe.AggregationType, cols []string) (string, error) {
	groups := df.GroupBy("department")
	if groups.Err != nil {
		return "", fmt.Errorf("group by department: %w", groups.Err)
	}

	out := groups.Aggregation(typs, cols)
	if out.Err != nil {
		return "", fmt.Errorf("aggregation: %w", out.Err)
	}
	return out.String(), nil
}

// groupLengths is the Len() analogue: per-group row counts via GetGroups.
func groupLengths(df dataframe.DataFrame) (string, error) {
	groups := df.GroupBy("department")
	if groups.Err != nil {
		return "", fmt.Errorf("group by department: %w", groups.Err)
	}

	byKey := groups.GetGroups()
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		sub := byKey[k]
		if sub.Err != nil {
			return "", fmt.Errorf("group %q: %w", k, sub.Err)
		}
		parts = append(parts, fmt.Sprintf("%s=%d", strings.TrimSpace(k), sub.Nrow()))
	}
	return strings.Join(parts, " "), nil
}
