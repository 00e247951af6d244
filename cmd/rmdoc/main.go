package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/rmdoc"
	"github.com/akeil/rmdoc/internal/config"
)

const (
	checkmark = "\u2713"
	crossmark = "\u2717"
	ellipsis  = "\u2026"
)

func main() {
	app := kingpin.New("rmdoc", "Convert reMarkable notebooks to PDF")
	app.HelpFlag.Short('h')

	var outDir string
	var (
		configPath = app.Flag("config", "Settings file").Short('c').Envar("RMDOC_CONFIG").String()
		store      = app.Flag("store", "Directory with notebook files").Short('s').Envar("RMDOC_STORE").String()
		templates  = app.Flag("templates", "Directory with SVG templates").Short('t').Envar("RMDOC_TEMPLATES").String()
		logLevel   = app.Flag("loglevel", "Log level (debug, info, warning, error)").Envar("RMDOC_LOGLEVEL").String()
	)

	ls := app.Command("ls", "List notebooks").Default()
	var (
		pinned = ls.Flag("pinned", "Show only pinned items").Short('p').Bool()
		format = ls.Flag("format", "Output format").Short('f').Default("tree").Enum("tree", "list")
		match  = ls.Arg("match", "Path must match this glob pattern").String()
	)

	pdf := app.Command("pdf", "Convert one or more notebooks to PDF")
	var (
		matchPdf  = pdf.Arg("match", "Path must match this glob pattern").String()
		mkDirsPdf = pdf.Flag("mkdirs", "Mirror the folder structure").Short('m').Bool()
		verify    = pdf.Flag("verify", "Validate the generated PDF files").Bool()
		workers   = pdf.Flag("workers", "Number of documents to convert in parallel").Short('w').Int()
	)
	pdf.Flag("output", "Output directory").Short('o').Envar("RMDOC_OUTPUT").StringVar(&outDir)

	png := app.Command("png", "Convert one or more notebooks to PNG images, one per page")
	var (
		matchPng  = png.Arg("match", "Path must match this glob pattern").String()
		mkDirsPng = png.Flag("mkdirs", "Mirror the folder structure").Short('m').Bool()
		thumbnail = png.Flag("thumbnail", "Scale pages to this width").Int()
	)
	png.Flag("output", "Output directory").Short('o').Envar("RMDOC_OUTPUT").StringVar(&outDir)

	convert := app.Command("convert", "Convert a single notebook to PDF or PNG")
	var (
		nodePath = convert.Arg("path", "Path of the notebook, without extension").Required().String()
		outPath  = convert.Arg("out", "Output file, .pdf or .png").Required().String()
	)

	check := app.Command("verify", "Validate PDF files")
	var (
		pdfFiles = check.Arg("files", "PDF files").Required().ExistingFiles()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	s, err := loadSettings(*configPath, config.Settings{
		Store:     *store,
		Templates: *templates,
		LogLevel:  *logLevel,
		Output:    outDir,
		Workers:   *workers,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	rmdoc.SetLogLevel(s.LogLevel)

	switch command {
	case "ls":
		err = doLs(s, *format, *match, *pinned)
	case "pdf":
		err = doPdf(s, *matchPdf, *mkDirsPdf, *verify)
	case "png":
		err = doPng(s, *matchPng, *mkDirsPng, *thumbnail)
	case "convert":
		err = doConvert(s, *nodePath, *outPath)
	case "verify":
		err = doVerify(*pdfFiles)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

// loadSettings reads the settings file and applies the values from flags.
func loadSettings(path string, flags config.Settings) (config.Settings, error) {
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default().Merge(flags), nil
		}
	}

	s, err := config.Load(path)
	if err != nil {
		return s, err
	}

	s = s.Merge(flags)
	return s, s.Validate()
}
