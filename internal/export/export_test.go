package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/config"
	"github.com/san-kum/motorsim/internal/motor"
)

func sampleResult() *motor.Result {
	return &motor.Result{
		Time:       motor.Channel{0, 0.03, 0.06, 0.09},
		KN:         motor.Channel{0, 180.5, 181.25, 0},
		Pressure:   motor.Channel{0, 4.1e6, 4.2e6, 0},
		Force:      motor.Channel{0, 612.3, 640.1, 0.1 / 3},
		Mass:       motor.GrainChannel{{0.5, 0.5}, {0.5, 0.5}, {0.48, 0.48}, {0.47, 0.47}},
		MassFlow:   motor.GrainChannel{{0, 0}, {0, 0}, {0.6, 1.2}, {0.3, 0.6}},
		MassFlux:   motor.GrainChannel{{0, 0}, {0, 0}, {800, 1500}, {400, 800}},
		Regression: motor.GrainChannel{{0, 0}, {0, 0}, {3.8e-4, 3.8e-4}, {7.7e-4, 7.7e-4}},
		Alerts: []alert.Alert{
			alert.New(alert.Warning, alert.Constraint, "Peak mass flux exceeded configured limit", "Motor"),
		},
		Success: true,
	}
}

func TestCSV_RoundTrip(t *testing.T) {
	res := sampleResult()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		t.Fatal(err)
	}

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	want := "time,kn,pressure,force,mass_1,massFlow_1,massFlux_1,regression_1,mass_2,massFlow_2,massFlux_2,regression_2"
	if header != want {
		t.Errorf("header = %q", header)
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	res.Alerts, res.Success = nil, false
	if !reflect.DeepEqual(got, res) {
		t.Errorf("round trip mismatch:\n%+v\n%+v", got, res)
	}
}

func TestReadCSV_Malformed(t *testing.T) {
	tests := []string{
		"",
		"time,kn,pressure\n0,0,0\n",
		"time,kn,pressure,force\n0,0,x,0\n",
	}
	for _, src := range tests {
		if _, err := ReadCSV(strings.NewReader(src)); !errors.Is(err, ErrMalformedCSV) {
			t.Errorf("%q: expected ErrMalformedCSV, got %v", src, err)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	def := *config.GetPreset("bates-knsu")
	if err := WriteJSON(&buf, "test", def, sampleResult()); err != nil {
		t.Fatal(err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatal(err)
	}
	if data.Steps != 4 || data.Name != "test" {
		t.Errorf("steps = %d, name = %q", data.Steps, data.Name)
	}
	if data.Result.Alerts[0].Level != alert.Warning {
		t.Errorf("alert level lost: %+v", data.Result.Alerts)
	}
	if len(data.Motor.Grains) != 2 {
		t.Errorf("motor grains = %d", len(data.Motor.Grains))
	}
}

func TestWriteENG(t *testing.T) {
	var buf bytes.Buffer
	def := *config.GetPreset("bates-knsu")
	if err := WriteENG(&buf, "My Motor", def, sampleResult()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[1] != "My_Motor 83 240 P 1.0000 1.0000 motorsim" {
		t.Errorf("header = %q", lines[1])
	}
	if strings.TrimSpace(lines[2]) != "0.0300 612.3000" {
		t.Errorf("first row = %q", lines[2])
	}
	if strings.TrimSpace(lines[4]) != "0.0900 0.0000" {
		t.Errorf("last row = %q", lines[4])
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("Channels")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 || rows[0][0] != "time" || rows[2][3] != "612.3" {
		t.Errorf("channels sheet = %v", rows)
	}

	alerts, err := f.GetRows("Alerts")
	if err != nil {
		t.Fatal(err)
	}
	if len(alerts) != 2 || alerts[1][0] != "WARNING" {
		t.Errorf("alerts sheet = %v", alerts)
	}

	v, err := f.GetCellValue("Summary", "B1")
	if err != nil || v == "" {
		t.Errorf("designation cell = %q, %v", v, err)
	}
}

func TestThrustCurveSVG(t *testing.T) {
	svg := ThrustCurveSVG(sampleResult(), 400, 200)
	for _, want := range []string{`<svg`, `id="thrust"`, `id="pressure"`, "M0.0,200.0", "</svg>"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}

	if ThrustCurveSVG(&motor.Result{}, 400, 200) != "" {
		t.Error("expected empty svg for an empty result")
	}
}
