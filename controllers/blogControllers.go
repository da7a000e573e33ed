package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mohitt09/Counselling/models"
)

// BlogController manages clinic blog posts and their like/view counters.
type BlogController struct {
	DB        *gorm.DB
	UploadDir string
}

func NewBlogController(db *gorm.DB, uploadDir string) *BlogController {
	return &BlogController{DB: db, UploadDir: uploadDir}
}

type blogInput struct {
	Title      string `json:"title" validate:"required"`
	Detail     string `json:"detail" validate:"required"`
	AuthorName string `json:"authorName" validate:"required"`
}

var blogLabels = map[string]string{
	"title":      "Title",
	"detail":     "Detail",
	"authorName": "Author Name",
}

// List returns every blog post.
func (bc *BlogController) List(c *gin.Context) {
	blogs := make([]models.Blog, 0)
	if err := bc.DB.Find(&blogs).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// Filter returns posts matching the isActive query parameter.
func (bc *BlogController) Filter(c *gin.Context) {
	isActive := c.Query("isActive") == "true"

	blogs := make([]models.Blog, 0)
	if err := bc.DB.Where("is_active = ?", isActive).Find(&blogs).Error; err != nil {
		respondError(c, err)
		return
	}

	if len(blogs) == 0 && isActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "No active blogs found"})
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// Create adds a post from a multipart form with a required image. Titles
// must be unique.
func (bc *BlogController) Create(c *gin.Context) {
	input := blogInput{
		Title:      c.PostForm("title"),
		Detail:     c.PostForm("detail"),
		AuthorName: c.PostForm("authorName"),
	}

	fieldErrs := checkStruct(input, blogLabels)

	if input.Title != "" {
		var existing models.Blog
		if err := bc.DB.Where("title = ?", input.Title).First(&existing).Error; err == nil {
			fieldErrs = append(fieldErrs, FieldError{Field: "title", Message: "Title must be unique"})
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, err)
			return
		}
	}

	if len(fieldErrs) > 0 {
		respondError(c, &ValidationError{Errors: fieldErrs})
		return
	}

	imagePath, err := saveUploadedImage(c, bc.UploadDir)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	blog := models.Blog{
		Title:      input.Title,
		Detail:     input.Detail,
		Image:      imagePath,
		Date:       now,
		IsActive:   true,
		AuthorName: input.AuthorName,
		Time:       now.Format(time.RFC3339),
	}

	if err := bc.DB.Create(&blog).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, blog)
}

func (bc *BlogController) findByID(id string) (*models.Blog, error) {
	var blog models.Blog
	if err := bc.DB.First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Blog"}
		}
		return nil, err
	}
	return &blog, nil
}

// Get returns one post by id.
func (bc *BlogController) Get(c *gin.Context) {
	blog, err := bc.findByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// Update edits a post; the image is replaced only when a new one is
// uploaded.
func (bc *BlogController) Update(c *gin.Context) {
	blog, err := bc.findByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	input := blogInput{
		Title:      c.PostForm("title"),
		Detail:     c.PostForm("detail"),
		AuthorName: c.PostForm("authorName"),
	}
	if fieldErrs := checkStruct(input, blogLabels); len(fieldErrs) > 0 {
		respondError(c, &ValidationError{Errors: fieldErrs})
		return
	}

	blog.Title = input.Title
	blog.Detail = input.Detail
	blog.AuthorName = input.AuthorName

	if _, err := c.FormFile("image"); err == nil {
		imagePath, err := saveUploadedImage(c, bc.UploadDir)
		if err != nil {
			respondError(c, err)
			return
		}
		blog.Image = imagePath
	}

	if err := bc.DB.Save(blog).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// ToggleActive flips the post's visibility flag.
func (bc *BlogController) ToggleActive(c *gin.Context) {
	blog, err := bc.findByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	blog.IsActive = !blog.IsActive
	if err := bc.DB.Model(blog).Update("is_active", blog.IsActive).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog's active status toggled successfully", "blog": blog})
}

// Like increments the like counter.
func (bc *BlogController) Like(c *gin.Context) {
	bc.bumpCounter(c, "like_count", 1, "Like count incremented successfully")
}

// Unlike decrements the like counter.
func (bc *BlogController) Unlike(c *gin.Context) {
	bc.bumpCounter(c, "like_count", -1, "Like count decremented successfully")
}

// View increments the view counter.
func (bc *BlogController) View(c *gin.Context) {
	bc.bumpCounter(c, "view_count", 1, "View count incremented successfully")
}

func (bc *BlogController) bumpCounter(c *gin.Context, column string, delta int, message string) {
	blog, err := bc.findByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := bc.DB.Model(blog).Update(column, gorm.Expr(column+" + ?", delta)).Error; err != nil {
		respondError(c, err)
		return
	}

	// Re-read so the response carries the stored counter value.
	if err := bc.DB.First(blog, blog.ID).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "blog": blog})
}
