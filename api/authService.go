package api

import "github.com/ZeyadMahfouzz/supermarket-client/models"

type AuthService struct {
	client *Client
}

func (s *AuthService) Register(data models.RegisterData) error {
	return s.client.post("/users/register", data, nil)
}

// Login exchanges credentials for a bearer token. The token is returned raw;
// decoding identity out of it is the session store's job.
func (s *AuthService) Login(email, password string) (string, error) {
	var out models.LoginResponse
	err := s.client.post("/users/login", models.LoginData{Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		message := out.Message
		if message == "" {
			message = "Login failed. Please try again."
		}
		return "", &Error{Kind: KindBusiness, Message: message}
	}
	return out.Token, nil
}
