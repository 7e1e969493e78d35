package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// A small command line client: logs in through POST /login and prints the reviews
// assigned to the account. Reads REVIEW_SERVER, REVIEW_EMAIL and REVIEW_PASSWORD.

type Config struct {
	Server   string
	Email    string
	Password string
}

var config Config

var client = &http.Client{Timeout: 10 * time.Second}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Failed to load .env: %v", err)
	}
	config = Config{
		Server:   os.Getenv("REVIEW_SERVER"),
		Email:    os.Getenv("REVIEW_EMAIL"),
		Password: os.Getenv("REVIEW_PASSWORD"),
	}
	if config.Server == "" {
		config.Server = "http://localhost:8080"
	}
}

func main() {
	token, err := login()
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	reviews, err := assignedReviews(token)
	if err != nil {
		log.Fatalf("Failed to list reviews: %v", err)
	}

	out, _ := json.MarshalIndent(reviews, "", "  ")
	fmt.Println(string(out))
}

func login() (string, error) {
	body, err := json.Marshal(map[string]string{"email": config.Email, "password": config.Password})
	if err != nil {
		return "", err
	}
	resp, err := client.Post(config.Server+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", responseError(resp)
	}
	var tokenResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}
	return tokenResp.Token, nil
}

func assignedReviews(token string) ([]json.RawMessage, error) {
	req, err := http.NewRequest(http.MethodGet, config.Server+"/employee/reviews", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}
	var reviews []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func responseError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return fmt.Errorf("%s: %s", resp.Status, body.Error)
}
