package sentiment

import "math/rand"

// ReplyTable maps each class to its candidate replies.
type ReplyTable map[Sentiment][]string

// DefaultReplies returns the reply templates served by the responder.
func DefaultReplies() ReplyTable {
	return ReplyTable{
		Positive: {
			"¡Parece que estás de buen ánimo! Sigue disfrutando tu día. 😊",
			"Tu mensaje refleja una actitud positiva. ¡Sigue así! 🌟",
			"Se nota optimismo en tus palabras. ¡Eso es genial! 💪",
		},
		Neutral: {
			"Tu mensaje parece ser neutral, sin una emoción fuerte asociada. 🤔",
			"No detecto un sentimiento marcado en tu mensaje. ¿Tienes algo en mente? 🧐",
			"Parece que es un comentario equilibrado, sin inclinación emocional. 🎭",
		},
		Negative: {
			"Percibo que podrías estar sintiéndote mal. Si necesitas hablar, aquí estoy. 🖤",
			"Tu mensaje suena algo negativo. Espero que todo mejore pronto. 🌧️",
			"Parece que no estás en tu mejor día. Recuerda que todo pasa. 💙",
		},
	}
}

// Picker chooses one reply out of a non-empty candidate list.
type Picker interface {
	Pick(candidates []string) string
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(candidates []string) string

func (f PickerFunc) Pick(candidates []string) string { return f(candidates) }

// RandomPicker picks uniformly using the auto-seeded global source.
type RandomPicker struct{}

func (RandomPicker) Pick(candidates []string) string {
	return candidates[rand.Intn(len(candidates))]
}
