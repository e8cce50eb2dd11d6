package handler

import (
	"bytes"
	"errors"

	"github.com/aldrsze/Personal-Portfolio-Website/internal/service"
	"github.com/gin-gonic/gin"
)

// UpdatePersonalInfo 保存后台提交的个人信息表单。
// 可选携带新的头像文件；未上传时沿用表单里的既有路径。
func (a *API) UpdatePersonalInfo(c *gin.Context) {
	profileImage := c.PostForm("existing_profile_image")
	upload, err := loadFormImage(c, "profile_image")
	if err != nil {
		flashAndRedirect(c, "error", "Failed to read profile image.")
		return
	}
	if upload != nil {
		url, err := a.images.Save("profile_", upload.Filename, bytes.NewReader(upload.Data))
		if err != nil {
			if errors.Is(err, service.ErrImageType) || errors.Is(err, service.ErrImageDecode) {
				flashAndRedirect(c, "error", "Unsupported image file.")
				return
			}
			flashAndRedirect(c, "error", "Failed to save profile image.")
			return
		}
		profileImage = url
	}

	formField := func(name string) *string {
		if _, ok := c.GetPostForm(name); !ok {
			return nil
		}
		value := c.PostForm(name)
		return &value
	}

	input := service.PersonalInfoInput{
		Name:            formField("name"),
		Intro:           formField("intro"),
		CareerObjective: formField("career_objective"),
		Email:           formField("email"),
		Phone:           formField("phone"),
		Address:         formField("address"),
		Age:             formField("age"),
		Birthday:        formField("birthday"),
		Gender:          formField("gender"),
		CivilStatus:     formField("civil_status"),
		Nationality:     formField("nationality"),
		Religion:        formField("religion"),
		Language:        formField("language"),
		Height:          formField("height"),
		Weight:          formField("weight"),
		Facebook:        formField("facebook"),
		Github:          formField("github"),
		Linkedin:        formField("linkedin"),
		AboutWebsite:    formField("about_website"),
		ProfileImage:    &profileImage,
	}

	if _, err := a.profiles.Update(input); err != nil {
		flashAndRedirect(c, "error", "Failed to update personal information.")
		return
	}

	flashAndRedirect(c, "success", "Personal information updated successfully!")
}
