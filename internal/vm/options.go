package vm

import (
	"io"
	"io/ioutil"

	"github.com/aceto-run/aceto/internal/ioadapter"
)

// Option configures a VM at construction time, the same functional-options
// shape as the teacher's VMOption/apply pair.
type Option interface{ apply(vm *VM) }

var defaultOptions = []Option{
	withInput(new(nopReader)),
	withOutput(ioutil.Discard),
}

type nopReader struct{}

func (nopReader) Read([]byte) (int, error) { return 0, io.EOF }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type rawOption struct{ ioadapter.RawByteReader }
type seedOption int64
type logfnOption func(mess string, args ...interface{})
type catchLogfnOption func(mess string, args ...interface{})
type traceOption bool
type memLimitOption int
type flushAlwaysOption bool

func withInput(r io.Reader) Option                   { return inputOption{r} }
func withOutput(w io.Writer) Option                  { return outputOption{w} }
func withTee(w io.Writer) Option                     { return teeOption{w} }
func withRaw(r ioadapter.RawByteReader) Option        { return rawOption{r} }
func withSeed(seed int64) Option                     { return seedOption(seed) }
func withLogf(f func(string, ...interface{})) Option { return logfnOption(f) }
func withCatchLogf(f func(string, ...interface{})) Option {
	return catchLogfnOption(f)
}
func withTrace(on bool) Option       { return traceOption(on) }
func withMemLimit(n int) Option      { return memLimitOption(n) }
func withFlushAlways(on bool) Option { return flushAlwaysOption(on) }

func (o inputOption) apply(vm *VM)  { vm.io.SetInput(o.Reader) }
func (o outputOption) apply(vm *VM) { vm.io.SetOutput(o.Writer) }
func (o teeOption) apply(vm *VM)    { vm.io.Tee(o.Writer) }
func (o rawOption) apply(vm *VM)    { vm.io.Raw = o.RawByteReader }

func (s seedOption) apply(vm *VM) { vm.rng = newSeededRand(int64(s)) }

func (f logfnOption) apply(vm *VM)      { vm.logfn = f }
func (f catchLogfnOption) apply(vm *VM) { vm.catchLogfn = f }
func (t traceOption) apply(vm *VM)      { vm.trace = bool(t) }
func (n memLimitOption) apply(vm *VM)   { vm.memLimit = int(n) }
func (b flushAlwaysOption) apply(vm *VM) { vm.io.FlushAlways = bool(b) }

// Exported constructors, mirroring the teacher's api.go WithXxx wrappers.
func WithInput(r io.Reader) Option                            { return withInput(r) }
func WithOutput(w io.Writer) Option                           { return withOutput(w) }
func WithTee(w io.Writer) Option                              { return withTee(w) }
func WithRaw(r ioadapter.RawByteReader) Option                 { return withRaw(r) }
func WithSeed(seed int64) Option                               { return withSeed(seed) }
func WithTrace(on bool) Option                                 { return withTrace(on) }
func WithLogf(f func(mess string, args ...interface{})) Option { return withLogf(f) }
func WithCatchLogf(f func(mess string, args ...interface{})) Option {
	return withCatchLogf(f)
}
func WithMemLimit(n int) Option      { return withMemLimit(n) }
func WithFlushAlways(on bool) Option { return withFlushAlways(on) }
