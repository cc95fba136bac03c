package model

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/g3n/engine/loader/obj"

	"github.com/Faultbox/learn-gl/pkg/formats/mtl"
)

// Decode parses OBJ source together with the concatenated source of its
// material libraries. Faces that come before any `o` statement belong to
// an object named defaultName.
func Decode(objSrc, mtlSrc []byte, defaultName string) (*obj.Decoder, map[string]mtl.Maps, error) {
	src, _ := prepareOBJ(objSrc, defaultName)

	dec, err := obj.DecodeReader(bytes.NewReader(src), bytes.NewReader(mtlSrc))
	if err != nil {
		return nil, nil, fmt.Errorf("decoding obj: %w", err)
	}
	maps, err := mtl.ParseMaps(bytes.NewReader(mtlSrc))
	if err != nil {
		return nil, nil, err
	}
	return dec, maps, nil
}

// prepareOBJ returns the material libraries named by src. When a face or
// usemtl statement appears before the first `o`, the returned source starts
// with an `o defaultName` line so the decoder has an object to fill.
func prepareOBJ(src []byte, defaultName string) ([]byte, []string) {
	var libs []string
	needObject, seen := false, false

	sc := bufio.NewScanner(bytes.NewReader(src))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "mtllib":
			libs = append(libs, fields[1:]...)
		case "o":
			seen = true
		case "f", "usemtl":
			if !seen {
				needObject = true
				seen = true
			}
		}
	}

	if !needObject {
		return src, libs
	}
	if defaultName == "" {
		defaultName = "default"
	}
	out := make([]byte, 0, len(src)+len(defaultName)+3)
	out = append(out, "o "+defaultName+"\n"...)
	return append(out, src...), libs
}
