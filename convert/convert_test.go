package convert

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/heinemichael/geometry2/errors"
	"github.com/heinemichael/geometry2/msg"
	"github.com/heinemichael/geometry2/registry"
)

// laserScan is a fixture representation with its own shape, bridged through
// msg.PointCloud.
type laserScan struct {
	msg.Header
	Ranges []float64
}

// rangeImage is a second fixture representation sharing the same canonical
// form.
type rangeImage struct {
	msg.Header
	Depths []float64
}

func scanToCloud(s laserScan) (msg.PointCloud, error) {
	cloud := msg.PointCloud{
		Header: s.Header,
		Points: make([]msg.Point, len(s.Ranges)),
	}
	for i, r := range s.Ranges {
		cloud.Points[i] = msg.Point{X: r}
	}
	return cloud, nil
}

func cloudToScan(c msg.PointCloud) (laserScan, error) {
	s := laserScan{
		Header: c.Header,
		Ranges: make([]float64, len(c.Points)),
	}
	for i, p := range c.Points {
		s.Ranges[i] = p.X
	}
	return s, nil
}

func cloudToImage(c msg.PointCloud) (rangeImage, error) {
	img := rangeImage{
		Header: c.Header,
		Depths: make([]float64, len(c.Points)),
	}
	for i, p := range c.Points {
		img.Depths[i] = p.X
	}
	return img, nil
}

func TestSameTypeIsDeepCopy(t *testing.T) {
	r := registry.New()

	src := msg.PointCloud{
		Header: msg.Header{FrameID: "laser", Stamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		Points: []msg.Point{{X: 1}, {X: 2}},
	}

	out, err := ToType(r, src, reflect.TypeOf(src))
	if err != nil {
		t.Fatalf("ToType: %v", err)
	}
	got, ok := out.(msg.PointCloud)
	if !ok {
		t.Fatalf("result type = %T, want msg.PointCloud", out)
	}

	if !reflect.DeepEqual(got, src) {
		t.Errorf("copy = %+v, want %+v", got, src)
	}

	// Mutating the original must not reach the copy.
	src.Points[0].X = 99
	if got.Points[0].X != 1 {
		t.Error("copy aliases the original's point slice")
	}
}

func TestSameTypeNeedsNoRegistration(t *testing.T) {
	r := registry.New()

	src := laserScan{Ranges: []float64{1, 2, 3}}
	out, err := ToType(r, src, reflect.TypeOf(src))
	if err != nil {
		t.Fatalf("ToType on empty registry: %v", err)
	}
	if !reflect.DeepEqual(out, src) {
		t.Errorf("got %+v, want %+v", out, src)
	}
}

func TestDirectConversionWinsOverCopy(t *testing.T) {
	r := registry.New()

	// A direct entry for the identical pair must take precedence over the
	// built-in deep copy.
	registry.RegisterDirect[laserScan, laserScan](r, func(s laserScan) (laserScan, error) {
		s.FrameID = "via-direct"
		return s, nil
	})

	out, err := ToType(r, laserScan{}, registry.KeyOf[laserScan]())
	if err != nil {
		t.Fatalf("ToType: %v", err)
	}
	if out.(laserScan).FrameID != "via-direct" {
		t.Error("same-type copy ran despite a registered direct conversion")
	}
}

func TestDirectConversionWinsOverBridge(t *testing.T) {
	r := registry.New()

	registry.RegisterToMsg[laserScan, msg.PointCloud](r, scanToCloud)
	registry.RegisterFromMsg[rangeImage, msg.PointCloud](r, cloudToImage)
	registry.RegisterDirect[laserScan, rangeImage](r, func(s laserScan) (rangeImage, error) {
		return rangeImage{Header: msg.Header{FrameID: "via-direct"}}, nil
	})

	out, err := ToType(r, laserScan{Ranges: []float64{7}}, registry.KeyOf[rangeImage]())
	if err != nil {
		t.Fatalf("ToType: %v", err)
	}
	if out.(rangeImage).FrameID != "via-direct" {
		t.Error("bridge ran despite a registered direct conversion")
	}
}

func TestCanonicalBridge(t *testing.T) {
	r := registry.New()

	registry.RegisterToMsg[laserScan, msg.PointCloud](r, scanToCloud)
	registry.RegisterFromMsg[rangeImage, msg.PointCloud](r, cloudToImage)

	src := laserScan{
		Header: msg.Header{FrameID: "laser"},
		Ranges: []float64{1.5, 2.5},
	}

	out, err := ToType(r, src, registry.KeyOf[rangeImage]())
	if err != nil {
		t.Fatalf("ToType: %v", err)
	}
	got, ok := out.(rangeImage)
	if !ok {
		t.Fatalf("result type = %T, want rangeImage", out)
	}
	if got.FrameID != "laser" {
		t.Errorf("FrameID = %q, want laser", got.FrameID)
	}
	if want := []float64{1.5, 2.5}; !reflect.DeepEqual(got.Depths, want) {
		t.Errorf("Depths = %v, want %v", got.Depths, want)
	}
}

func TestRoundTripThroughCanonical(t *testing.T) {
	r := registry.New()

	registry.RegisterToMsg[laserScan, msg.PointCloud](r, scanToCloud)
	registry.RegisterFromMsg[laserScan, msg.PointCloud](r, cloudToScan)

	src := laserScan{
		Header: msg.Header{FrameID: "laser", Stamp: time.Unix(100, 0)},
		Ranges: []float64{3, 1, 4},
	}

	cloud, err := To[msg.PointCloud](r, src)
	if err != nil {
		t.Fatalf("to canonical: %v", err)
	}
	back, err := To[laserScan](r, cloud)
	if err != nil {
		t.Fatalf("from canonical: %v", err)
	}

	if !reflect.DeepEqual(back, src) {
		t.Errorf("round trip = %+v, want %+v", back, src)
	}
}

func TestBridgeRequiresBothHalves(t *testing.T) {
	r := registry.New()

	// Only the to-msg half exists; the pair must still be unsupported.
	registry.RegisterToMsg[laserScan, msg.PointCloud](r, scanToCloud)

	_, err := ToType(r, laserScan{}, registry.KeyOf[rangeImage]())
	if err == nil {
		t.Fatal("expected an unsupported-pair error")
	}
	terr, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if terr.Kind != errors.KindUnsupportedType {
		t.Errorf("Kind = %q, want %q", terr.Kind, errors.KindUnsupportedType)
	}
	if terr.Type != "convert.laserScan" || terr.Target != "convert.rangeImage" {
		t.Errorf("error names %s -> %s, want convert.laserScan -> convert.rangeImage", terr.Type, terr.Target)
	}
}

func TestNoPath(t *testing.T) {
	r := registry.New()

	_, err := ToType(r, laserScan{}, registry.KeyOf[rangeImage]())
	if err == nil {
		t.Fatal("expected an unsupported-pair error")
	}
	terr, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if terr.Phase != errors.PhaseConvert {
		t.Errorf("Phase = %q, want %q", terr.Phase, errors.PhaseConvert)
	}
}

func TestConversionErrorsPassThrough(t *testing.T) {
	r := registry.New()
	sentinel := fmt.Errorf("scan is degenerate")

	registry.RegisterDirect[laserScan, rangeImage](r, func(laserScan) (rangeImage, error) {
		return rangeImage{}, sentinel
	})

	_, err := ToType(r, laserScan{}, registry.KeyOf[rangeImage]())
	if err != sentinel {
		t.Errorf("err = %v, want the conversion's own error unchanged", err)
	}
}

func TestToTypeNilInputs(t *testing.T) {
	r := registry.New()

	if _, err := ToType(r, nil, registry.KeyOf[laserScan]()); err == nil {
		t.Error("nil value accepted")
	}
	if _, err := ToType(r, laserScan{}, nil); err == nil {
		t.Error("nil target type accepted")
	}
}

func BenchmarkSameTypeCopy(b *testing.B) {
	r := registry.New()
	src := msg.PointCloud{
		Header: msg.Header{FrameID: "laser"},
		Points: make([]msg.Point, 128),
	}
	target := reflect.TypeOf(src)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ToType(r, src, target); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCanonicalBridge(b *testing.B) {
	r := registry.New()
	registry.RegisterToMsg[laserScan, msg.PointCloud](r, scanToCloud)
	registry.RegisterFromMsg[rangeImage, msg.PointCloud](r, cloudToImage)

	src := laserScan{Ranges: make([]float64, 128)}
	target := registry.KeyOf[rangeImage]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ToType(r, src, target); err != nil {
			b.Fatal(err)
		}
	}
}
