package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/reoring/esmodel"
	"github.com/reoring/esmodel/i18n"
	sinkyaml "github.com/reoring/esmodel/sink/yaml"
	yamlsrc "github.com/reoring/esmodel/source/yaml"
	_ "github.com/reoring/esmodel/typedapi/cat/indices"
	_ "github.com/reoring/esmodel/typedapi/core/get"
	_ "github.com/reoring/esmodel/typedapi/core/search"
	_ "github.com/reoring/esmodel/typedapi/types"
)

var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch sub := os.Args[1]; sub {
	case "models":
		err = modelsCmd(os.Args[2:], os.Stdout)
	case "schema":
		err = schemaCmd(os.Args[2:], os.Stdout)
	case "canon":
		err = canonCmd(os.Args[2:], os.Stdin, os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "esmodel CLI\n\nUsage:\n  esmodel models\n  esmodel schema [-indent S] <model>\n  esmodel canon [-in json|yaml] [-out json|yaml] [-indent S] [-driver go-json|encoding/json] [-lang en|ja] [-strict] [-max-depth N] [-max-bytes N] [-v] <model> < payload\n\nNotes:\n  - Model names are matched case-insensitively (e.g. search.response).\n  - canon reads one document from stdin and writes it back in field order.")
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "esmodel: "+format+"\n", a...)
	os.Exit(1)
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return zap.Must(cfg.Build())
}

func modelsCmd(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("models", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tANCESTORS")
	for _, m := range esmodel.Models() {
		kind := "value"
		switch {
		case m.Object != nil:
			kind = "object"
		case m.Union != nil:
			kind = "union"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", m.Name, kind, m.AncestorCount())
	}
	return tw.Flush()
}

func lookup(name string) (esmodel.Model, error) {
	m, ok := esmodel.Lookup(name)
	if !ok {
		return esmodel.Model{}, fmt.Errorf("unknown model %q (see 'esmodel models')", name)
	}
	return m, nil
}

func schemaCmd(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	var indent string
	fs.StringVar(&indent, "indent", "  ", "indentation of the output")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	m, err := lookup(fs.Arg(0))
	if err != nil {
		return err
	}
	out, err := esmodel.MarshalSchema(esmodel.ExportSchema(m.Codec), "", indent)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

// erasedCodec lets the typed helpers of esmodel drive a registry codec.
type erasedCodec struct{ c esmodel.AnyCodec }

func (e erasedCodec) Encode(g esmodel.Generator, v any) error { return e.c.EncodeAny(g, v) }
func (e erasedCodec) Decode(d *esmodel.Decoder) (any, error)  { return e.c.DecodeAny(d) }

func canonCmd(args []string, r io.Reader, w io.Writer) error {
	fs := flag.NewFlagSet("canon", flag.ContinueOnError)
	var in, out, indent, driver, lang string
	var verbose, strict bool
	var maxDepth int
	var maxBytes int64
	fs.StringVar(&in, "in", "json", "input format: json or yaml")
	fs.StringVar(&out, "out", "json", "output format: json or yaml")
	fs.StringVar(&indent, "indent", "", "JSON indentation; compact when empty")
	fs.StringVar(&driver, "driver", "go-json", "JSON tokenizer: go-json or encoding/json")
	fs.StringVar(&lang, "lang", "en", "language of error messages: en or ja")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	fs.BoolVar(&strict, "strict", false, "reject duplicate object keys")
	fs.IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth; 0 disables the check")
	fs.Int64Var(&maxBytes, "max-bytes", 0, "maximum input size in bytes; 0 disables the check")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()
	i18n.SetLanguage(lang)

	m, err := lookup(fs.Arg(0))
	if err != nil {
		return err
	}
	var src esmodel.Source
	switch in {
	case "json":
		src, err = jsonSource(driver, r)
		if err != nil {
			return err
		}
	case "yaml":
		src = yamlsrc.NewReader(r)
	default:
		return fmt.Errorf("unknown input format %q", in)
	}
	src = esmodel.WithLimits(src, esmodel.Limits{RejectDuplicateKeys: strict, MaxDepth: maxDepth, MaxBytes: maxBytes})
	logger.Debug("decoding", zap.String("model", m.Name), zap.String("in", in), zap.String("driver", driver))

	c := erasedCodec{c: m.Codec}
	v, err := esmodel.Read[any](c, src)
	if err != nil {
		return err
	}
	logger.Debug("decoded", zap.String("model", m.Name), zap.String("type", fmt.Sprintf("%T", v)))

	var b []byte
	switch out {
	case "json":
		if indent == "" {
			b, err = esmodel.Marshal[any](c, v)
		} else {
			b, err = esmodel.MarshalIndent[any](c, v, "", indent)
		}
		b = append(b, '\n')
	case "yaml":
		b, err = sinkyaml.Marshal[any](c, v)
	default:
		return fmt.Errorf("unknown output format %q", out)
	}
	if err != nil {
		return err
	}
	logger.Debug("encoded", zap.String("out", out), zap.Int("bytes", len(b)))
	_, err = w.Write(b)
	return err
}

func jsonSource(driver string, r io.Reader) (esmodel.Source, error) {
	switch driver {
	case "go-json", "":
		return esmodel.JSONReader(r), nil
	case "encoding/json", "stdlib":
		return esmodel.StdlibJSONDriver().NewReader(r), nil
	}
	return nil, fmt.Errorf("unknown JSON driver %q", driver)
}
