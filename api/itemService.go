package api

import "github.com/ZeyadMahfouzz/supermarket-client/models"

type ItemService struct {
	client *Client
}

func (s *ItemService) List() ([]models.Item, error) {
	var items []models.Item
	if err := s.client.get("/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Details fetches a single item. The items service reads the id from the
// request body, so this goes over POST /items/details rather than a path
// parameter.
func (s *ItemService) Details(id int64) (models.Item, error) {
	var item models.Item
	err := s.client.post("/items/details", map[string]int64{"id": id}, &item)
	return item, err
}

func (s *ItemService) Create(item models.Item) (models.Item, error) {
	var created models.Item
	err := s.client.post("/items", item, &created)
	return created, err
}

func (s *ItemService) Update(item models.Item) error {
	return s.client.put("/items/update", item, nil)
}

func (s *ItemService) Delete(id int64) error {
	return s.client.delete("/items", map[string]int64{"id": id}, nil)
}
