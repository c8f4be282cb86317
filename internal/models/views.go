package models

// Views are the transport shapes of the entities. Each one follows relationships
// in a single direction only, so no view ever embeds the object it came from.

// RestaurantView is the shallow form of a Restaurant
type RestaurantView struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantWithPizzasView is a Restaurant with its associations and their pizzas
type RestaurantWithPizzasView struct {
	RestaurantView
	RestaurantPizzas []RestaurantPizzaWithPizzaView `json:"restaurant_pizzas"`
}

// PizzaView is the only form of a Pizza, associations are never included
type PizzaView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaView is the shallow form of a RestaurantPizza
type RestaurantPizzaView struct {
	ID           int `json:"id"`
	Price        int `json:"price"`
	PizzaID      int `json:"pizza_id"`
	RestaurantID int `json:"restaurant_id"`
}

// RestaurantPizzaWithPizzaView embeds the pizza only, used below a restaurant
type RestaurantPizzaWithPizzaView struct {
	RestaurantPizzaView
	Pizza *PizzaView `json:"pizza"`
}

// RestaurantPizzaDetailView embeds both endpoints in their shallow form
type RestaurantPizzaDetailView struct {
	RestaurantPizzaView
	Pizza      *PizzaView      `json:"pizza"`
	Restaurant *RestaurantView `json:"restaurant"`
}

// ShallowView serializes the restaurant without its associations
func (r Restaurant) ShallowView() RestaurantView {
	return RestaurantView{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}

// WithPizzasView serializes the restaurant with every association and its pizza.
// RestaurantPizzas.Pizza is expected to be preloaded.
func (r Restaurant) WithPizzasView() RestaurantWithPizzasView {
	restaurantPizzas := make([]RestaurantPizzaWithPizzaView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		restaurantPizzas = append(restaurantPizzas, rp.WithPizzaView())
	}
	return RestaurantWithPizzasView{
		RestaurantView:   r.ShallowView(),
		RestaurantPizzas: restaurantPizzas,
	}
}

// View serializes the pizza
func (p Pizza) View() PizzaView {
	return PizzaView{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}

// ShallowView serializes the association with foreign keys only
func (rp RestaurantPizza) ShallowView() RestaurantPizzaView {
	return RestaurantPizzaView{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
}

// WithPizzaView serializes the association with its pizza embedded
func (rp RestaurantPizza) WithPizzaView() RestaurantPizzaWithPizzaView {
	view := RestaurantPizzaWithPizzaView{RestaurantPizzaView: rp.ShallowView()}
	if rp.Pizza != nil {
		pizza := rp.Pizza.View()
		view.Pizza = &pizza
	}
	return view
}

// DetailView serializes the association with both its pizza and its restaurant embedded.
// The restaurant is shallow and never re-embeds its own associations.
func (rp RestaurantPizza) DetailView() RestaurantPizzaDetailView {
	view := RestaurantPizzaDetailView{RestaurantPizzaView: rp.ShallowView()}
	if rp.Pizza != nil {
		pizza := rp.Pizza.View()
		view.Pizza = &pizza
	}
	if rp.Restaurant != nil {
		restaurant := rp.Restaurant.ShallowView()
		view.Restaurant = &restaurant
	}
	return view
}

// RestaurantViews serializes a list of restaurants shallowly
func RestaurantViews(restaurants []Restaurant) []RestaurantView {
	views := make([]RestaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, r.ShallowView())
	}
	return views
}

// PizzaViews serializes a list of pizzas
func PizzaViews(pizzas []Pizza) []PizzaView {
	views := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		views = append(views, p.View())
	}
	return views
}
