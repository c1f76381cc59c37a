package http

// Wire messages shared by the handlers. Validation failures carry one
// message per violated field; everything else is a single mensaje.

type erroresResponse struct {
	Errores []string `json:"errores"`
}

type mensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

const (
	mensajeNoEncontrado    = "Proyecto no encontrado"
	mensajeErrorInesperado = "Ha ocurrido un error inesperado"
	mensajeCuerpoInvalido  = "El cuerpo de la petición no es válido"
)
