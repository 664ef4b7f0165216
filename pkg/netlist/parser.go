package netlist

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/lekidtools/internal/errors"
	"github.com/edp1096/lekidtools/pkg/device"
)

type AnalysisType int

const (
	AnalysisNone AnalysisType = iota
	AnalysisAC
)

type NetlistData struct {
	Elements []Element     // Circuit elements
	Nodes    map[string]int // Node name and index
	Analysis AnalysisType  // Analysis type
	ACParam  struct {
		Sweep  string  // DEC, OCT, LIN
		Points int     // number of points
		FStart float64 // start frequency
		FStop  float64 // stop frequency
	}
	Title string // Circuit title
}

type Element struct {
	Type   string            // Part type (R, L, C, V, I)
	Name   string            // Part name
	Nodes  []string          // Node names
	Value  float64           // Part value
	Params map[string]string // Parameter values
}

// Scale suffixes are case-insensitive, so "M" is milli and "MEG" is mega.
var unitMap = map[string]float64{
	"t":   1e12,  // tera
	"g":   1e9,   // giga
	"meg": 1e6,   // mega
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var (
	valuePattern = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)((?i:meg|[tgkmunpf]))?[a-zA-Z]*$`)
	spacePattern = regexp.MustCompile(`\s+`)
)

func Parse(input string) (*NetlistData, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	netlistData := &NetlistData{
		Nodes: make(map[string]int),
	}

	// Title or comment
	if scanner.Scan() {
		netlistData.Title = strings.TrimPrefix(scanner.Text(), "*")
		netlistData.Title = strings.TrimSpace(netlistData.Title)
	}

	var currentLine string
	lineNo := 1
	flush := func() error {
		if currentLine == "" {
			return nil
		}
		err := parseLine(netlistData, currentLine)
		currentLine = ""
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Inline comment
		if idx := strings.IndexAny(line, "*;"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if len(line) == 0 {
			continue
		}

		// Line continuation
		if strings.HasPrefix(line, "+") {
			if currentLine != "" {
				currentLine += " " + strings.TrimSpace(line[1:])
			}
			continue
		}

		if err := flush(); err != nil {
			return nil, err
		}
		if strings.EqualFold(line, ".end") {
			break
		}
		currentLine = line
	}

	if err := flush(); err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading netlist")
	}

	return netlistData, nil
}

func parseLine(netlistData *NetlistData, line string) error {
	line = spacePattern.ReplaceAllString(line, " ")

	if strings.HasPrefix(line, ".") {
		return parseDotOperator(netlistData, line)
	}

	element, err := parseElement(line)
	if err != nil {
		return err
	}

	netlistData.Elements = append(netlistData.Elements, *element)
	for _, node := range element.Nodes {
		if _, exists := netlistData.Nodes[node]; !exists {
			netlistData.Nodes[node] = len(netlistData.Nodes)
		}
	}
	return nil
}

// Parse .ac
func parseDotOperator(netlistData *NetlistData, line string) error {
	var err error

	fields := strings.Fields(line)

	switch strings.ToLower(fields[0]) {
	case ".ac":
		netlistData.Analysis = AnalysisAC
		if len(fields) < 5 {
			return errors.New("insufficient AC parameters, need sweep type, points, fstart, and fstop")
		}

		// DEC, OCT, LIN
		netlistData.ACParam.Sweep = strings.ToUpper(fields[1])
		switch netlistData.ACParam.Sweep {
		case "DEC", "OCT", "LIN":
		default:
			return errors.Newf("invalid sweep type: %s", netlistData.ACParam.Sweep)
		}

		netlistData.ACParam.Points, err = strconv.Atoi(fields[2])
		if err != nil {
			return errors.Wrap(err, "invalid points number")
		}
		if netlistData.ACParam.Points < 2 {
			return errors.Newf("AC sweep needs at least 2 points, got %d", netlistData.ACParam.Points)
		}
		netlistData.ACParam.FStart, err = ParseValue(fields[3])
		if err != nil {
			return errors.Wrap(err, "invalid fstart")
		}
		netlistData.ACParam.FStop, err = ParseValue(fields[4])
		if err != nil {
			return errors.Wrap(err, "invalid fstop")
		}
		if netlistData.ACParam.FStart <= 0 || netlistData.ACParam.FStop <= netlistData.ACParam.FStart {
			return errors.Newf("invalid AC range %g..%g", netlistData.ACParam.FStart, netlistData.ACParam.FStop)
		}

	default:
		return errors.Wrapf(errors.ErrUnsupported, "analysis %s", fields[0])
	}

	return nil
}

func parseElement(line string) (*Element, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, errors.Newf("invalid element format: %s", line)
	}

	elem := &Element{
		Name:   fields[0],
		Type:   strings.ToUpper(string(fields[0][0])),
		Params: make(map[string]string),
	}

	switch elem.Type {
	case "V", "I":
		return parseACSource(elem.Type, fields)

	case "R", "L", "C":
		elem.Nodes = fields[1:3]
		value, err := ParseValue(fields[3])
		if err != nil {
			return nil, errors.Wrapf(err, "element %s", elem.Name)
		}
		elem.Value = value

		return elem, nil

	default:
		return nil, errors.Wrapf(errors.ErrUnsupported, "element type %s (%s)", elem.Type, elem.Name)
	}
}

// parseACSource reads "name n+ n- AC mag [phase]".
func parseACSource(sourceType string, fields []string) (*Element, error) {
	elem := &Element{
		Name:   fields[0],
		Type:   sourceType,
		Nodes:  []string{fields[1], fields[2]},
		Params: make(map[string]string),
	}

	words := fields[3:]
	if !strings.EqualFold(words[0], "AC") {
		return nil, errors.Wrapf(errors.ErrUnsupported, "%s source type %s", sourceType, words[0])
	}
	if len(words) < 2 {
		return nil, errors.New("missing AC magnitude")
	}

	magnitude, err := ParseValue(words[1])
	if err != nil {
		return nil, errors.Wrap(err, "invalid AC magnitude")
	}
	elem.Value = magnitude

	elem.Params["phase"] = "0"
	if len(words) > 2 {
		elem.Params["phase"] = words[2]
	}

	return elem, nil
}

// ParseValue reads a SPICE number with an optional scale suffix and unit,
// e.g. "10n", "4.7pF", "2meg", "1e-9".
func ParseValue(val string) (float64, error) {
	matches := valuePattern.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, errors.Newf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	// factor
	if multiplier, ok := unitMap[strings.ToLower(matches[2])]; ok {
		num *= multiplier
	}

	return num, nil
}

func CreateDevice(elem Element) (device.Device, error) {
	switch elem.Type {
	case "R":
		return device.NewResistor(elem.Name, elem.Nodes, elem.Value), nil

	case "L":
		return device.NewInductor(elem.Name, elem.Nodes, elem.Value), nil

	case "C":
		return device.NewCapacitor(elem.Name, elem.Nodes, elem.Value), nil

	case "V", "I":
		phase := 0.0
		if p, ok := elem.Params["phase"]; ok && p != "" {
			var err error
			phase, err = ParseValue(p)
			if err != nil {
				return nil, errors.Wrap(err, "invalid AC phase")
			}
		}
		if elem.Type == "I" {
			return device.NewACCurrentSource(elem.Name, elem.Nodes, elem.Value, phase), nil
		}
		return device.NewACVoltageSource(elem.Name, elem.Nodes, elem.Value, phase), nil

	default:
		return nil, errors.Wrapf(errors.ErrUnsupported, "device type %s", elem.Type)
	}
}
