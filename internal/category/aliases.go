package category

// Category is a canonical place category. The set is closed.
type Category string

const (
	Restaurant    Category = "restaurant"
	Bar           Category = "bar"
	Cafe          Category = "cafe"
	FastFood      Category = "comida_rapida"
	Pizzeria      Category = "pizzeria"
	Asian         Category = "asiatico"
	IceCream      Category = "heladeria"
	Bakery        Category = "panaderia"
	Mexican       Category = "mexicano"
	Italian       Category = "italiano"
	Vegetarian    Category = "vegetariano"
	Spanish       Category = "español"
	Mediterranean Category = "mediterraneo"
	American      Category = "americano"
	Seafood       Category = "marisqueria"
	Latin         Category = "latino"
	French        Category = "frances"
	ArabAfrican   Category = "arabe_africano"
	FoodTruck     Category = "food_truck"
	Market        Category = "mercado"
	Default       Category = "default"
)

func (c Category) String() string { return string(c) }

// AliasGroup lists the raw spellings that map to one category.
type AliasGroup struct {
	Category Category
	Aliases  []string
}

// aliasTable is ordered: on a collision after normalization the earlier
// group wins. Google Places primary types (japanese_restaurant, ...) are
// listed exactly; the fuzzy phase confuses them with each other.
var aliasTable = []AliasGroup{
	{Restaurant, []string{
		"restaurant", "restaurante", "restaurantes", "restoran", "restorán",
		"food", "comida", "eat", "eating", "dining", "eatery", "bistro",
		"brasserie", "local de comida", "casa de comidas", "gourmet",
		"cenar", "almorzar", "comer",
	}},
	{Bar, []string{
		"bar", "bares", "pub", "pubs", "cerveceria", "cervecería", "cervecerias",
		"taberna", "tasca", "cantina", "coctelería", "cocteleria", "cocktail",
		"cocktails", "vermutería", "vermuteria", "vinoteca", "bar de vinos",
		"wine_bar", "drinks", "bebidas", "copas", "tragos", "bodega",
		"bar_and_grill",
	}},
	{Cafe, []string{
		"cafe", "café", "cafés", "cafeteria", "cafetería", "cafeterias",
		"coffee", "coffee_shop", "brunch", "desayuno", "desayunos", "breakfast",
		"té", "tea", "tea_room", "salón de té", "merienda", "tostadas",
		"churrería", "churreria", "churros",
		"breakfast_restaurant", "brunch_restaurant", "tea_house",
	}},
	{FastFood, []string{
		"fast_food", "comida rápida", "comida rapida", "hamburguesería",
		"hamburgueseria", "hamburguesas", "burger", "burgers", "kebab", "döner",
		"hot dog", "perrito caliente", "papas fritas", "fries", "pollo frito",
		"fried chicken", "sandwich", "sandwiches", "bocadillo", "bocadillos",
		"bocata", "bocatas",
		"fast_food_restaurant", "hamburger_restaurant", "sandwich_shop",
	}},
	{Pizzeria, []string{
		"pizzeria", "pizzería", "pizzerias", "pizza", "pizzas",
		"pizza_restaurant",
	}},
	{Asian, []string{
		"asian_restaurant", "asiatico", "asiático", "japanese", "japonés",
		"japones", "chinese", "chino", "chinos", "sushi", "sashimi", "maki",
		"nigiri", "ramen", "thai", "tailandés", "tailandes", "pad thai",
		"coreano", "korean", "vietnamese", "vietnamita", "pho", "indian",
		"indio", "hindú", "curry", "tandoori", "dim sum", "wok", "poke",
		"japanese_restaurant", "chinese_restaurant", "korean_restaurant", "thai_restaurant",
		"vietnamese_restaurant", "indian_restaurant", "indonesian_restaurant", "ramen_restaurant",
		"sushi_restaurant", "asian", "asian food", "comida asiática",
	}},
	{IceCream, []string{
		"ice_cream", "heladeria", "heladería", "helado", "helados", "gelato",
		"gelateria", "gelatería", "ice_cream_shop", "yogurtería", "yogurteria",
		"frozen yogurt", "yogur helado", "postres", "dessert",
		"dessert_shop", "dessert_restaurant",
	}},
	{Bakery, []string{
		"bakery", "panaderia", "panadería", "bakeries", "pasteleria", "pastelería",
		"pan", "bread", "croissant", "pastel", "pasteles", "tarta", "torta",
		"cake", "dulces", "sweets", "repostería", "reposteria", "bollería",
		"bolleria", "donuts", "rosquillas", "boulangerie",
		"bagel_shop", "donut_shop",
	}},
	{Mexican, []string{
		"mexican", "mejico", "mexicano", "mexican_restaurant", "tex-mex", "texmex",
		"tacos", "taco", "burrito", "burritos", "quesadilla", "quesadillas",
		"nachos", "guacamole", "margaritas", "fajitas", "enchiladas", "pozole",
	}},
	{Italian, []string{
		"italian", "italia", "italiano", "italian_restaurant", "pasta",
		"ristorante", "trattoria", "trattoría", "spaghetti", "lasagna", "lasaña",
		"focaccia", "gnocchi", "ñoquis", "ravioli",
	}},
	{Vegetarian, []string{
		"vegetarian", "vegetariano", "vegetarian_restaurant", "vegetarianos",
		"vegan", "vegano", "vegana", "plant_based", "basado en plantas",
		"comida sana", "healthy", "healthy_food", "ensaladas", "ensalada",
		"salad", "salad_bar",
		"vegan_restaurant",
	}},
	{Spanish, []string{
		"spanish", "español", "españa", "spanish_restaurant", "restaurante español",
		"comida española", "cocina española", "ibérico", "iberico", "jamón",
		"jamon", "jamoneria", "jamonería", "paella", "cocido", "fabada",
		"gazpacho", "tortilla", "tortilla de patatas", "tapas", "tapas_restaurant",
		"tapas_bar", "raciones", "pinchos", "pintxos", "tapeo", "ir de tapas",
		"croquetas",
	}},
	{Mediterranean, []string{
		"mediterranean", "mediterráneo", "mediterranea", "mediterranean_restaurant",
		"comida mediterránea", "cocina mediterranea", "griego", "greek",
		"moussaka", "turco", "turkish", "libanés", "lebanese", "hummus",
		"falafel", "pita",
		"greek_restaurant", "turkish_restaurant", "lebanese_restaurant",
	}},
	{American, []string{
		"american", "america", "americano", "american_restaurant",
		"comida americana", "diner", "bbq", "barbacoa", "ribs", "costillas",
		"steakhouse", "steak", "filete", "parrilla americana",
		"steak_house", "barbecue_restaurant",
	}},
	{Seafood, []string{
		"seafood", "marisqueria", "marisquería", "seafood_restaurant", "pescado",
		"pescados", "marisco", "mariscos", "pulpería", "pulperia", "pulpo",
		"ostras", "oyster_bar", "fish", "fish_and_chips", "ceviche", "cevichería",
	}},
	{Latin, []string{
		"latino", "latinoamericano", "comida latina", "sudamericano", "peruano",
		"peruvian", "lomo saltado", "argentino", "parrillada", "asado",
		"chimichurri", "colombiano", "arepa", "arepas", "venezolano", "brasileño",
		"brasilero", "rodizio", "picanha", "cubano", "caribeño",
		"brazilian_restaurant",
	}},
	{French, []string{
		"french", "francés", "francia", "frances", "comida francesa", "creperie",
		"crepería", "crepes", "galettes", "foie gras", "ratatouille", "raclette",
		"fondue",
		"french_restaurant",
	}},
	{ArabAfrican, []string{
		"arabe", "árabe", "middle eastern", "moroccan", "marroquí", "tajine",
		"tagine", "couscous", "cuscús", "egipcio", "etiope", "ethiopian", "injera",
		"middle_eastern_restaurant", "african_restaurant",
	}},
	{FoodTruck, []string{
		"food_truck", "food truck", "camion de comida", "gastroneta",
		"street_food", "comida callejera", "puesto", "puesto de comida",
	}},
	{Market, []string{
		"market", "mercado", "food_hall", "food hall", "food_court",
		"patio de comidas", "mercado gastronómico",
	}},
	{Default, []string{"default"}},
}

// Table returns a copy of the built-in alias table in its canonical order.
func Table() []AliasGroup {
	out := make([]AliasGroup, len(aliasTable))
	for i, g := range aliasTable {
		out[i] = AliasGroup{Category: g.Category, Aliases: append([]string(nil), g.Aliases...)}
	}
	return out
}

// Categories lists every canonical category, default last.
func Categories() []Category {
	out := make([]Category, 0, len(aliasTable))
	for _, g := range aliasTable {
		out = append(out, g.Category)
	}
	return out
}
