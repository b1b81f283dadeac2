package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/motorsim/internal/motor"
)

type ExportData struct {
	Name   string           `json:"name"`
	Steps  int              `json:"steps"`
	Motor  motor.Definition `json:"motor"`
	Stats  motor.Stats      `json:"stats"`
	Result *motor.Result    `json:"result"`
}

func WriteJSON(w io.Writer, name string, def motor.Definition, res *motor.Result) error {
	data := ExportData{
		Name:   name,
		Steps:  res.Len(),
		Motor:  def,
		Stats:  res.Stats(),
		Result: res,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
