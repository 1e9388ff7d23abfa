package service

import (
	"github.com/aquispel/burnout-api/internal/model"
)

// BuildPredictionRequest shapes a test's demographics and answers into the
// fixed ML payload. Questions without a stored answer are sent as empty
// strings rather than rejected; the completeness gate in the completion
// workflow is the place that enforces all 19 answers are present.
func BuildPredictionRequest(test *model.Test, answersByKey map[string]string) MLPredictionRequest {
	answer := func(key string) string {
		return answersByKey[key]
	}

	return MLPredictionRequest{
		Respuestas: QuestionPayload{
			Ciclo:           test.Ciclo,
			Genero:          test.Genero,
			Facultad:        test.Facultad,
			Practicasprepro: test.Practicasprepro,
			Pregunta1:       answer("pregunta1"),
			Pregunta2:       answer("pregunta2"),
			Pregunta3:       answer("pregunta3"),
			Pregunta4:       answer("pregunta4"),
			Pregunta5:       answer("pregunta5"),
			Pregunta6:       answer("pregunta6"),
			Pregunta7:       answer("pregunta7"),
			Pregunta8:       answer("pregunta8"),
			Pregunta9:       answer("pregunta9"),
			Pregunta10:      answer("pregunta10"),
			Pregunta11:      answer("pregunta11"),
			Pregunta12:      answer("pregunta12"),
			Pregunta13:      answer("pregunta13"),
			Pregunta14:      answer("pregunta14"),
			Pregunta15:      answer("pregunta15"),
			Pregunta16:      answer("pregunta16"),
			Pregunta17:      answer("pregunta17"),
			Pregunta18:      answer("pregunta18"),
			Pregunta19:      answer("pregunta19"),
		},
	}
}
