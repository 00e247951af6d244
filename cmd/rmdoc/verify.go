package main

import (
	"fmt"
	"os"

	"github.com/akeil/rmdoc/pkg/render"
)

func doVerify(paths []string) error {
	failed := 0
	for _, p := range paths {
		err := verifyFile(p)
		if err != nil {
			fmt.Printf("%v %v: %v\n", crossmark, p, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files are invalid", failed, len(paths))
	}
	return nil
}

func verifyFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := render.VerifyPDF(f)
	if err != nil {
		return err
	}

	fmt.Printf("%v %v is valid (%d pages)\n", checkmark, path, n)
	return nil
}
