package storage

import (
	"context"
	"fmt"
	"log"

	"portfolio-backend/internal/models"
)

// Seed loads the demo portfolio content. It is a no-op when projects
// already exist, so restarting a postgres deployment does not duplicate
// rows.
func Seed(ctx context.Context, s Storage) error {
	existing, err := s.Projects().List(ctx)
	if err != nil {
		return fmt.Errorf("seed precheck failed: %w", err)
	}
	if len(existing) > 0 {
		log.Println("Seed skipped: projects already present")
		return nil
	}

	for _, p := range seedProjects {
		if _, err := s.Projects().Create(ctx, p); err != nil {
			return fmt.Errorf("seed project %q: %w", p.Title, err)
		}
	}
	for _, e := range seedExperiences {
		if _, err := s.Experiences().Create(ctx, e); err != nil {
			return fmt.Errorf("seed experience %q: %w", e.Title, err)
		}
	}
	for _, t := range seedTestimonials {
		if _, err := s.Testimonials().Create(ctx, t); err != nil {
			return fmt.Errorf("seed testimonial %q: %w", t.Name, err)
		}
	}

	log.Printf("Seeded %d projects, %d experiences, %d testimonials",
		len(seedProjects), len(seedExperiences), len(seedTestimonials))
	return nil
}

func strPtr(s string) *string { return &s }

var seedProjects = []models.ProjectInsert{
	{
		Title:        "Personal Assistant",
		Description:  "Contextual Conversations Using RAG - Advanced AI assistant with natural language processing capabilities",
		Image:        "https://images.unsplash.com/photo-1677442136019-21780ecad995?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Technologies: []string{"Python", "RAG", "NLP", "OpenAI"},
		GithubURL:    strPtr("https://github.com/chanakaprasanna/personal-assistant"),
		LiveURL:      strPtr("https://personal-assistant-demo.com"),
		Featured:     1,
		Category:     "full-stack",
	},
	{
		Title:        "Potato Disease Prediction",
		Description:  "Deep Learning-based Image Classification for Identifying Potato Diseases using CNN",
		Image:        "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Technologies: []string{"TensorFlow", "CNN", "Computer Vision", "Python"},
		GithubURL:    strPtr("https://github.com/chanakaprasanna/potato-disease"),
		Featured:     1,
		Category:     "full-stack",
	},
	{
		Title:        "Sentiment Analysis",
		Description:  "Classifying movie reviews using deep learning and cloud deployment with real-time processing",
		Image:        "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Technologies: []string{"LSTM", "AWS", "Flask", "NLP"},
		GithubURL:    strPtr("https://github.com/chanakaprasanna/sentiment-analysis"),
		Featured:     1,
		Category:     "full-stack",
	},
	{
		Title:        "Blog Generator",
		Description:  "Transforming YouTube videos into high-quality blog posts with AI agents and automation",
		Image:        "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Technologies: []string{"OpenAI", "LangChain", "React", "Node.js"},
		GithubURL:    strPtr("https://github.com/chanakaprasanna/blog-generator"),
		LiveURL:      strPtr("https://blog-generator-demo.com"),
		Featured:     1,
		Category:     "frontend",
	},
	{
		Title:        "SmartPOS System",
		Description:  "Retail Management System with real-time inventory, sales processing, and analytics",
		Image:        "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Technologies: []string{"React", "Node.js", "MongoDB", "Express"},
		GithubURL:    strPtr("https://github.com/chanakaprasanna/smartpos"),
		Category:     "full-stack",
	},
	{
		Title:        "LearnAI Platform",
		Description:  "AI-Powered Learning Platform with intelligent content processing and personalized education",
		Image:        "https://images.unsplash.com/photo-1501504905252-473c47e087f8?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=400",
		Technologies: []string{"React", "Express", "Python", "AI"},
		GithubURL:    strPtr("https://github.com/chanakaprasanna/learn-ai"),
		LiveURL:      strPtr("https://learn-ai-demo.com"),
		Category:     "full-stack",
	},
}

var seedExperiences = []models.ExperienceInsert{
	{
		Title:        "Software Engineer Intern",
		Company:      "Infinity Innovators",
		Description:  "Developed MyRide, a comprehensive vehicle management app with React Native for the front end and AWS serverless architecture for the back end. Collaborated with team members to deliver a production-ready mobile application.",
		Technologies: []string{"React Native", "AWS", "Serverless", "Node.js"},
		StartDate:    "2023-06",
		EndDate:      strPtr("2023-12"),
	},
	{
		Title:        "Freelance App Developer",
		Company:      "Independent",
		Description:  "Designed and developed mobile apps for iOS and Android, as well as web applications, using React Native Expo and Next.js. Delivered custom solutions for various clients with focus on user experience and performance.",
		Technologies: []string{"React Native", "Next.js", "Expo", "JavaScript"},
		StartDate:    "2022-01",
		Current:      1,
	},
}

var seedTestimonials = []models.TestimonialInsert{
	{
		Name:    "Mathesh",
		Title:   "Software Engineer Trainee",
		Company: "Infinity Innovators",
		Content: "I had the pleasure of working with Chanaka during our internship at Infinity Innovators, where we were in the same team. He is highly passionate and enthusiastic, especially about machine learning. His skills in React Native and AWS serverless backend stood out.",
		Avatar:  strPtr("M"),
	},
	{
		Name:    "Sarah Johnson",
		Title:   "Project Manager",
		Company: "Tech Solutions Inc",
		Content: "Chanaka delivered an exceptional mobile application that exceeded our expectations. His attention to detail, technical expertise, and ability to understand our requirements made the entire development process smooth and efficient.",
		Avatar:  strPtr("S"),
	},
}
