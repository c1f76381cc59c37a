package llm

import (
	"fmt"
	"strings"

	"github.com/gestion-proyectos/proyectos-backend/internal/proyectos/domain"
)

// BuildPrompt converts the project portfolio into the instruction text sent
// to the generator. Only non-empty fields are rendered: a blank line would
// otherwise invite the generator to invent content for it.
func BuildPrompt(proyectos []domain.ProyectoResumen) string {
	lines := []string{
		"Eres un analista senior especializado en generar resúmenes ejecutivos de portafolios de proyectos.",
		"Utiliza únicamente la información proporcionada para crear un resumen claro y directo.",
		`Responde con un único objeto JSON con la forma {"resumen": string, "descripciones": [{"id": string, "descripcion": string}]} y sin ningún texto adicional.`,
		"Cada descripción debe tener como máximo 80 palabras, con tono profesional y factual. No inventes datos que no estén en la entrada.",
		"",
	}

	for i, p := range proyectos {
		lines = append(lines, fmt.Sprintf("Proyecto %d:", i+1))
		lines = append(lines, proyectoLines(p)...)
		lines = append(lines, "")
	}

	lines = append(lines, "Recuerda: responde únicamente con JSON válido.")
	return strings.Join(lines, "\n")
}

// BuildPromptForProyecto builds the single-project variant of the prompt,
// used to describe one record in isolation.
func BuildPromptForProyecto(p domain.ProyectoResumen) string {
	lines := []string{
		"Eres un analista especializado en generar resúmenes de proyectos.",
		"Utiliza la información proporcionada para crear un resumen claro y directo.",
	}
	lines = append(lines, proyectoLines(p)...)
	lines = append(lines, "El resumen debe reflejar el estado y propósito del proyecto. No inventes datos.")
	return strings.Join(lines, "\n")
}

func proyectoLines(p domain.ProyectoResumen) []string {
	var lines []string
	if p.ID != "" {
		lines = append(lines, "Id: "+p.ID)
	}
	if p.Nombre != "" {
		lines = append(lines, "Nombre del proyecto: "+p.Nombre)
	}
	if p.Descripcion != nil && strings.TrimSpace(*p.Descripcion) != "" {
		lines = append(lines, "Descripción: "+*p.Descripcion)
	}
	if p.Estado != "" {
		lines = append(lines, "Estado: "+p.Estado)
	}
	return lines
}
