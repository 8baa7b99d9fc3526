package store

import (
	"time"

	"gcs-food-backend/entities"
)

// Data is a batch of records for Load.
type Data struct {
	Users          []entities.User
	Nationalities  []entities.Nationality
	Categories     []entities.Category
	Recipes        []entities.Recipe
	Harmonizations []entities.Harmonization
}

const (
	placeholderRecipeImage        = "/placeholder.svg?height=400&width=600"
	placeholderHarmonizationImage = "/placeholder.svg?height=200&width=300"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed returns the demo catalogue the site ships with.
func Seed() Data {
	joined := ts("2024-01-01T00:00:00Z")

	return Data{
		Users: []entities.User{
			{ID: "user-1", Email: "joao@example.com", FirstName: "João", LastName: "Silva", CreatedAt: joined},
			{ID: "user-2", Email: "maria@example.com", FirstName: "Maria", LastName: "Santos", CreatedAt: joined},
			{ID: "admin", Email: "admin@gcsfood.com", FirstName: "Admin", LastName: "GCS", CreatedAt: joined},
		},
		Nationalities: []entities.Nationality{
			{ID: "br", Name: "Brasileira", FlagEmoji: "🇧🇷"},
			{ID: "it", Name: "Italiana", FlagEmoji: "🇮🇹"},
			{ID: "jp", Name: "Japonesa", FlagEmoji: "🇯🇵"},
			{ID: "cn", Name: "Chinesa", FlagEmoji: "🇨🇳"},
			{ID: "gr", Name: "Grega", FlagEmoji: "🇬🇷"},
			{ID: "us", Name: "Americana", FlagEmoji: "🇺🇸"},
			{ID: "ru", Name: "Russa", FlagEmoji: "🇷🇺"},
			{ID: "pl", Name: "Polonesa", FlagEmoji: "🇵🇱"},
			{ID: "mx", Name: "Mexicana", FlagEmoji: "🇲🇽"},
			{ID: "fr", Name: "Francesa", FlagEmoji: "🇫🇷"},
		},
		Categories: []entities.Category{
			{ID: "fitness", Name: "Fitness", Emoji: "🏋️"},
			{ID: "vegan", Name: "Vegana", Emoji: "🌱"},
			{ID: "vegetarian", Name: "Vegetariana", Emoji: "🥕"},
			{ID: "dessert", Name: "Sobremesa", Emoji: "🍰"},
			{ID: "breakfast", Name: "Café da Manhã", Emoji: "☀️"},
			{ID: "lunch", Name: "Almoço", Emoji: "🌤️"},
			{ID: "dinner", Name: "Jantar", Emoji: "🌙"},
			{ID: "fast-food", Name: "Fast Food", Emoji: "🍔"},
			{ID: "soup", Name: "Sopas", Emoji: "🥣"},
		},
		Recipes:        seedRecipes(),
		Harmonizations: seedHarmonizations(),
	}
}

func seedRecipes() []entities.Recipe {
	return []entities.Recipe{
		{
			ID:          "recipe-1",
			Title:       "Lasanha Tradicional Italiana",
			Description: "Uma deliciosa lasanha italiana com molho bolonhesa caseiro, queijos selecionados e massa fresca. Perfeita para reunir a família!",
			Ingredients: []string{
				"500g de massa de lasanha",
				"500g de carne moída",
				"2 xícaras de molho de tomate",
				"300g de queijo mussarela",
				"200g de queijo parmesão ralado",
				"1 cebola média picada",
				"3 dentes de alho",
				"2 colheres de azeite",
				"Sal e pimenta a gosto",
				"Manjericão fresco",
			},
			Instructions: []string{
				"Pré-aqueça o forno a 180°C",
				"Cozinhe a massa de lasanha conforme instruções da embalagem",
				"Em uma panela, refogue a cebola e o alho no azeite",
				"Adicione a carne moída e cozinhe até dourar",
				"Acrescente o molho de tomate e temperos, cozinhe por 15 minutos",
				"Em um refratário, faça camadas alternando massa, molho e queijos",
				"Finalize com queijo parmesão por cima",
				"Leve ao forno por 45 minutos até dourar",
				"Deixe descansar por 10 minutos antes de servir",
			},
			Utensils:      []string{"Panela grande", "Refratário", "Espátula", "Ralador de queijo"},
			ImageURL:      placeholderRecipeImage,
			PrepTime:      90,
			Servings:      8,
			Difficulty:    "Médio",
			UserID:        "user-1",
			NationalityID: "it",
			CategoryID:    "dinner",
			CreatedAt:     ts("2024-01-15T10:00:00Z"),
		},
		{
			ID:          "recipe-2",
			Title:       "Feijoada Completa",
			Description: "Feijoada tradicional brasileira com todos os acompanhamentos",
			Ingredients: []string{
				"500g feijão preto",
				"200g carne seca",
				"150g costela salgada",
				"100g linguiça defumada",
				"Arroz",
				"Farofa",
				"Couve refogada",
			},
			Instructions: []string{
				"Deixe as carnes de molho",
				"Cozinhe o feijão",
				"Refogue os temperos",
				"Misture tudo e sirva com acompanhamentos",
			},
			Utensils:      []string{"Panela de pressão", "Panela grande", "Frigideira"},
			ImageURL:      placeholderRecipeImage,
			PrepTime:      180,
			Servings:      6,
			Difficulty:    "Difícil",
			UserID:        "user-2",
			NationalityID: "br",
			CategoryID:    "dinner",
			CreatedAt:     ts("2024-02-20T14:30:00Z"),
		},
		{
			ID:          "recipe-3",
			Title:       "Sushi Variado",
			Description: "Seleção de sushis frescos com peixe e vegetais",
			Ingredients: []string{
				"Arroz para sushi",
				"Nori",
				"Salmão fresco",
				"Pepino",
				"Abacate",
				"Molho shoyu",
				"Wasabi",
				"Gengibre",
			},
			Instructions: []string{
				"Prepare o arroz",
				"Corte os ingredientes",
				"Monte os rolos de sushi",
				"Corte e sirva com acompanhamentos",
			},
			Utensils:      []string{"Esteira de bambu", "Faca afiada", "Tigela"},
			ImageURL:      placeholderRecipeImage,
			PrepTime:      45,
			Servings:      4,
			Difficulty:    "Médio",
			UserID:        "user-1",
			NationalityID: "jp",
			CategoryID:    "lunch",
			CreatedAt:     ts("2024-03-10T11:00:00Z"),
		},
		{
			ID:          "recipe-4",
			Title:       "Tacos Mexicanos",
			Description: "Tacos autênticos com carne moída temperada, pico de gallo e guacamole.",
			Ingredients: []string{
				"Tortillas de milho",
				"400g carne moída",
				"1 cebola",
				"2 tomates",
				"1 abacate",
				"Coentro",
				"Limão",
				"Temperos para taco",
			},
			Instructions: []string{
				"Prepare a carne moída com temperos",
				"Faça o pico de gallo e guacamole",
				"Aqueça as tortillas",
				"Monte os tacos com todos os ingredientes",
			},
			Utensils:      []string{"Frigideira", "Tigelas", "Espremedor de limão"},
			ImageURL:      placeholderRecipeImage,
			PrepTime:      30,
			Servings:      4,
			Difficulty:    "Fácil",
			UserID:        "user-2",
			NationalityID: "mx",
			CategoryID:    "dinner",
			CreatedAt:     ts("2024-04-01T18:00:00Z"),
		},
		{
			ID:          "recipe-5",
			Title:       "Croissant Francês",
			Description: "Croissants amanteigados e folhados, perfeitos para o café da manhã.",
			Ingredients: []string{"Massa folhada", "Manteiga", "Açúcar", "Ovo para pincelar"},
			Instructions: []string{
				"Prepare a massa folhada (ou use pronta)",
				"Dobre e refrigere várias vezes",
				"Corte em triângulos e enrole",
				"Pincele com ovo e asse até dourar",
			},
			Utensils:      []string{"Rolo de massa", "Assadeira", "Pincel de cozinha"},
			ImageURL:      placeholderRecipeImage,
			PrepTime:      120,
			Servings:      12,
			Difficulty:    "Difícil",
			UserID:        "user-1",
			NationalityID: "fr",
			CategoryID:    "breakfast",
			CreatedAt:     ts("2024-05-10T08:00:00Z"),
		},
		{
			ID:          "recipe-6",
			Title:       "Salada Grega",
			Description: "Salada refrescante com pepino, tomate, azeitonas, queijo feta e azeite.",
			Ingredients: []string{
				"Pepino",
				"Tomate",
				"Cebola roxa",
				"Azeitonas Kalamata",
				"Queijo Feta",
				"Azeite de oliva extra virgem",
				"Orégano",
			},
			Instructions: []string{
				"Corte os vegetais em pedaços grandes",
				"Misture todos os ingredientes em uma tigela",
				"Tempere com azeite e orégano",
				"Sirva imediatamente",
			},
			Utensils:      []string{"Tigela grande", "Faca"},
			ImageURL:      placeholderRecipeImage,
			PrepTime:      15,
			Servings:      2,
			Difficulty:    "Fácil",
			UserID:        "user-2",
			NationalityID: "gr",
			CategoryID:    "fitness",
			CreatedAt:     ts("2024-06-20T12:00:00Z"),
		},
		{
			ID:          "recipe-7",
			Title:       "Bolo de Chocolate Vegano",
			Description: "Um bolo de chocolate úmido e delicioso, sem ingredientes de origem animal.",
			Ingredients: []string{
				"2 xícaras de farinha de trigo",
				"1 xícara de açúcar",
				"1/2 xícara de cacau em pó",
				"1 colher de chá de bicarbonato de sódio",
				"1/2 colher de chá de sal",
				"1 xícara de água",
				"1/2 xícara de óleo vegetal",
				"1 colher de chá de extrato de baunilha",
				"1 colher de sopa de vinagre de maçã",
			},
			Instructions: []string{
				"Pré-aqueça o forno a 180°C e unte uma forma",
				"Em uma tigela grande, misture os ingredientes secos",
				"Em outra tigela, misture os ingredientes molhados",
				"Adicione os ingredientes molhados aos secos e misture até incorporar",
				"Despeje a massa na forma e asse por 30-35 minutos",
				"Deixe esfriar antes de servir",
			},
			Utensils:      []string{"Duas tigelas", "Batedor de arame", "Forma de bolo"},
			ImageURL:      placeholderRecipeImage,
			PrepTime:      45,
			Servings:      10,
			Difficulty:    "Médio",
			UserID:        "admin",
			NationalityID: "us",
			CategoryID:    "vegan",
			CreatedAt:     ts("2024-07-01T16:00:00Z"),
		},
		{
			ID:          "recipe-8",
			Title:       "Sopa de Tomate Cremosa",
			Description: "Uma sopa de tomate reconfortante e cremosa, perfeita para dias frios.",
			Ingredients: []string{
				"1 kg de tomates maduros",
				"1 cebola média",
				"2 dentes de alho",
				"4 xícaras de caldo de legumes",
				"1/2 xícara de creme de leite (opcional)",
				"Azeite de oliva",
				"Sal, pimenta e manjericão fresco",
			},
			Instructions: []string{
				"Refogue a cebola e o alho no azeite",
				"Adicione os tomates picados e cozinhe por 10 minutos",
				"Acrescente o caldo de legumes e cozinhe por 20 minutos",
				"Bata a sopa no liquidificador até ficar homogênea",
				"Retorne à panela, adicione o creme de leite (se usar) e tempere",
				"Sirva quente com manjericão fresco",
			},
			Utensils:      []string{"Panela grande", "Liquidificador", "Concha"},
			ImageURL:      placeholderRecipeImage,
			PrepTime:      40,
			Servings:      4,
			Difficulty:    "Fácil",
			UserID:        "admin",
			NationalityID: "it",
			CategoryID:    "soup",
			CreatedAt:     ts("2024-07-10T19:00:00Z"),
		},
	}
}

func seedHarmonizations() []entities.Harmonization {
	return []entities.Harmonization{
		{
			ID:          "harm-1",
			Title:       "Cabernet Sauvignon & Filé ao Molho Madeira",
			Description: "A robustez do Cabernet complementa perfeitamente a intensidade da carne e o sabor rico do molho madeira.",
			Item1Name:   "Cabernet Sauvignon",
			Item2Name:   "Filé ao Molho Madeira",
			ImageURL:    placeholderHarmonizationImage,
			Item1Color:  "text-red-700",
			UserID:      "user-1",
			CreatedAt:   ts("2024-01-20T10:00:00Z"),
		},
		{
			ID:          "harm-2",
			Title:       "Chardonnay & Queijos Maduros",
			Description: "A cremosidade e notas amanteigadas do Chardonnay realçam os sabores complexos e a textura dos queijos maduros.",
			Item1Name:   "Chardonnay",
			Item2Name:   "Queijos Maduros",
			ImageURL:    placeholderHarmonizationImage,
			Item1Color:  "text-yellow-600",
			UserID:      "user-2",
			CreatedAt:   ts("2024-02-01T15:30:00Z"),
		},
		{
			ID:          "harm-3",
			Title:       "Pinot Noir & Salmão Grelhado",
			Description: "A delicadeza e os taninos suaves do Pinot Noir harmonizam com a suavidade e a gordura do salmão grelhado.",
			Item1Name:   "Pinot Noir",
			Item2Name:   "Salmão Grelhado",
			ImageURL:    placeholderHarmonizationImage,
			Item1Color:  "text-red-500",
			UserID:      "user-1",
			CreatedAt:   ts("2024-03-05T11:45:00Z"),
		},
		{
			ID:          "harm-4",
			Title:       "Queijo Brie & Geleia de Damasco",
			Description: "A doçura da geleia de damasco equilibra a cremosidade e o sabor suave do queijo brie.",
			Item1Name:   "Queijo Brie",
			Item2Name:   "Geleia de Damasco",
			ImageURL:    placeholderHarmonizationImage,
			Item1Color:  "text-orange-400",
			UserID:      "user-1",
			CreatedAt:   ts("2024-07-17T10:00:00Z"),
		},
		{
			ID:          "harm-5",
			Title:       "Cerveja IPA & Hambúrguer Artesanal",
			Description: "O amargor e o aroma cítrico da IPA cortam a gordura e complementam os sabores do hambúrguer.",
			Item1Name:   "Cerveja IPA",
			Item2Name:   "Hambúrguer Artesanal",
			ImageURL:    placeholderHarmonizationImage,
			Item1Color:  "text-yellow-800",
			UserID:      "user-2",
			CreatedAt:   ts("2024-07-17T11:00:00Z"),
		},
		{
			ID:          "harm-6",
			Title:       "Café Expresso & Tiramisu",
			Description: "A intensidade do café realça a doçura e a cremosidade do clássico tiramisu italiano.",
			Item1Name:   "Café Expresso",
			Item2Name:   "Tiramisu",
			ImageURL:    placeholderHarmonizationImage,
			Item1Color:  "text-gray-800",
			UserID:      "admin",
			CreatedAt:   ts("2024-07-18T09:00:00Z"),
		},
		{
			ID:          "harm-7",
			Title:       "Saquê & Sashimi de Salmão",
			Description: "A leveza e o frescor do saquê complementam a delicadeza do sashimi de salmão.",
			Item1Name:   "Saquê",
			Item2Name:   "Sashimi de Salmão",
			ImageURL:    placeholderHarmonizationImage,
			Item1Color:  "text-blue-300",
			UserID:      "user-1",
			CreatedAt:   ts("2024-07-18T14:00:00Z"),
		},
	}
}
