package report

import (
	"fmt"
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ajroetker/vkernel/bench"
	"github.com/ajroetker/vkernel/kernel"
)

// Struct returns the report as a protobuf Struct. Non-finite floats, which
// JSON cannot carry as numbers, are stored as the strings "nan", "inf" and
// "-inf".
func Struct(r kernel.Result, timing *bench.Timing) *structpb.Struct {
	fields := map[string]*structpb.Value{
		"vlength":      structpb.NewNumberValue(float64(r.Len())),
		"count":        structpb.NewNumberValue(float64(r.Count)),
		"sum":          floatValue(r.Sum),
		"sum2":         floatValue(r.Sum2),
		"output":       floatList(r.Output),
		"intermediate": floatList(r.Intermediate),
	}
	if timing != nil {
		fields["timing_ms"] = structpb.NewNumberValue(timing.Milliseconds())
		fields["iterations"] = structpb.NewNumberValue(float64(timing.Iterations))
	}
	return &structpb.Struct{Fields: fields}
}

func floatValue(f float64) *structpb.Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return structpb.NewStringValue(FormatFloat(f))
	}
	return structpb.NewNumberValue(f)
}

func floatList(v []float64) *structpb.Value {
	values := make([]*structpb.Value, len(v))
	for i, f := range v {
		values[i] = floatValue(f)
	}
	return structpb.NewListValue(&structpb.ListValue{Values: values})
}

// WriteJSON writes the report for r to w as an indented JSON object.
func WriteJSON(w io.Writer, r kernel.Result, timing *bench.Timing) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(Struct(r, timing))
	if err != nil {
		return fmt.Errorf("report: encoding json: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
