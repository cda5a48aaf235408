package server

import (
	"github.com/maxwellkiplagat/Movie-clubb/internal/middleware"
	"github.com/maxwellkiplagat/Movie-clubb/internal/models"
	"github.com/maxwellkiplagat/Movie-clubb/internal/service"
	"github.com/maxwellkiplagat/Movie-clubb/internal/views"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		ClubID     uint   `json:"club_id"`
		MovieTitle string `json:"movie_title"`
		Content    string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ClubID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Club ID is required"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID:   currentUserID(c),
		ClubID:     req.ClubID,
		MovieTitle: req.MovieTitle,
		Content:    req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	middleware.PostsCreatedTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(views.Post(post))
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.Post(post))
}

// GetClubPosts handles GET /api/clubs/:id/posts
func (s *Server) GetClubPosts(c *fiber.Ctx) error {
	clubID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListClubPosts(c.Context(), clubID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views.Posts(posts))
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted",
	})
}

// ToggleLike handles POST /api/posts/:id/like. Liking an already-liked post
// removes the like; the status code distinguishes the two outcomes.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, likesCount, err := s.postService.ToggleLike(c.Context(), currentUserID(c), postID)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	message := "Post unliked"
	if liked {
		status = fiber.StatusCreated
		message = "Post liked"
	}

	return c.Status(status).JSON(fiber.Map{
		"message":     message,
		"liked":       liked,
		"likes_count": likesCount,
	})
}

// GetPostLikes handles GET /api/posts/:id/likes
func (s *Server) GetPostLikes(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	likes, err := s.postService.ListLikes(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"likes_count": len(likes),
		"likes":       views.Likes(likes),
	})
}
