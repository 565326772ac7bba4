// Package probe examines the group-by API surface of the gota dataframe
// library before it is used for benchmark aggregation queries: which methods
// the grouped-table type actually exposes, whether the convenience shortcuts
// the benchmark suite would like to call exist, and which aggregation
// operators are available.
package probe

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ShortcutNames are the grouped-table convenience methods the benchmark
// queries would prefer over an explicit aggregation expression.
var ShortcutNames = []string{"Count", "Len", "Mean", "Sum"}

// MethodInfo describes one exported method of the grouped-table type.
type MethodInfo struct {
	Name      string
	Signature string
}

// AggregationOp is one operator of the library's aggregation enum.
type AggregationOp struct {
	Name  string
	Value int
}

// Inspection is the full report on the grouped-table API.
type Inspection struct {
	TypeName     string
	PkgPath      string
	Methods      []MethodInfo
	Shortcuts    map[string]bool
	Aggregations []AggregationOp
}

// aggregationOps enumerates the operators gota exposes. Names are ours; the
// library identifies operators only by constant.
var aggregationOps = []struct {
	name string
	typ  dataframe.AggregationType
}{
	{"MAX", dataframe.Aggregation_MAX},
	{"MIN", dataframe.Aggregation_MIN},
	{"MEAN", dataframe.Aggregation_MEAN},
	{"MEDIAN", dataframe.Aggregation_MEDIAN},
	{"STD", dataframe.Aggregation_STD},
	{"SUM", dataframe.Aggregation_SUM},
	{"COUNT", dataframe.Aggregation_COUNT},
}

// InspectGroups builds a two-row sample frame, groups it, and reflects over
// the value GroupBy returns.
func InspectGroups() (Inspection, error) {
	df := dataframe.New(
		series.New([]string{"Engineering", "Sales"}, series.String, "department"),
		series.New([]int{70000, 55000}, series.Int, "salary"),
	)
	if df.Err != nil {
		return Inspection{}, fmt.Errorf("building sample frame: %w", df.Err)
	}

	groups := df.GroupBy("department")
	if groups.Err != nil {
		return Inspection{}, fmt.Errorf("grouping sample frame: %w", groups.Err)
	}

	v := reflect.ValueOf(groups)
	t := v.Type()

	insp := Inspection{
		TypeName:  t.Elem().Name(),
		PkgPath:   t.Elem().PkgPath(),
		Shortcuts: make(map[string]bool, len(ShortcutNames)),
	}

	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		insp.Methods = append(insp.Methods, MethodInfo{
			Name:      m.Name,
			Signature: formatSignature(m),
		})
	}
	sort.Slice(insp.Methods, func(i, j int) bool { return insp.Methods[i].Name < insp.Methods[j].Name })

	for _, name := range ShortcutNames {
		insp.Shortcuts[name] = v.MethodByName(name).IsValid()
	}

	for _, op := range aggregationOps {
		insp.Aggregations = append(insp.Aggregations, AggregationOp{Name: op.name, Value: int(op.typ)})
	}

	return insp, nil
}

// formatSignature renders a method type without its receiver,
// e.g. "func([]dataframe.AggregationType, []string) dataframe.DataFrame".
func formatSignature(m reflect.Method) string {
	t := m.Type

	ins := make([]string, 0, t.NumIn()-1)
	for i := 1; i < t.NumIn(); i++ {
		in := t.In(i).String()
		if t.IsVariadic() && i == t.NumIn()-1 {
			in = "..." + t.In(i).Elem().String()
		}
		ins = append(ins, in)
	}

	outs := make([]string, 0, t.NumOut())
	for i := 0; i < t.NumOut(); i++ {
		outs = append(outs, t.Out(i).String())
	}

	sig := "func(" + strings.Join(ins, ", ") + ")"
	switch len(outs) {
	case 0:
	case 1:
		sig += " " + outs[0]
	default:
		sig += " (" + strings.Join(outs, ", ") + ")"
	}
	return sig
}
