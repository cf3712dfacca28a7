package docs

// @title Advisory FAQ API
// @version 1.0
// @description Ranks the firm's FAQ catalog against blog posts and other content for the marketing site.

// @contact.name Web Team

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
